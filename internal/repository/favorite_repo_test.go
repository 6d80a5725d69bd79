package repository

import (
	"path/filepath"
	"testing"

	"starfaves/internal/database"
	"starfaves/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedUserAndTargets(t *testing.T, db *gorm.DB) (user models.User, person models.Person, planet models.Planet) {
	t.Helper()
	user = models.User{Username: "ana", Email: "a@x.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	person = models.Person{Name: "Obi-Wan Kenobi"}
	require.NoError(t, db.Create(&person).Error)
	planet = models.Planet{Name: "Tatooine"}
	require.NoError(t, db.Create(&planet).Error)
	return
}

func TestFavoriteAddAndList(t *testing.T) {
	db := newTestDB(t)
	user, person, planet := seedUserAndTargets(t, db)
	repo := NewFavoriteRepository(db)

	f1, err := repo.Add(user.ID, models.PlanetTarget(planet.ID))
	require.NoError(t, err)
	require.NotNil(t, f1.PlanetID)
	assert.Nil(t, f1.PeopleID)

	f2, err := repo.Add(user.ID, models.PersonTarget(person.ID))
	require.NoError(t, err)
	assert.Nil(t, f2.PlanetID)
	require.NotNil(t, f2.PeopleID)

	list, err := repo.ListByUserID(user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestFavoriteAddDanglingTarget(t *testing.T) {
	db := newTestDB(t)
	user, _, _ := seedUserAndTargets(t, db)
	repo := NewFavoriteRepository(db)

	_, err := repo.Add(user.ID, models.PlanetTarget(999))
	assert.Error(t, err, "insert against a missing planet must fail the FK constraint")

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFavoriteRemove(t *testing.T) {
	db := newTestDB(t)
	user, _, planet := seedUserAndTargets(t, db)
	repo := NewFavoriteRepository(db)

	_, err := repo.Add(user.ID, models.PlanetTarget(planet.ID))
	require.NoError(t, err)

	require.NoError(t, repo.Remove(user.ID, models.PlanetTarget(planet.ID)))
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	err = repo.Remove(user.ID, models.PlanetTarget(planet.ID))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFavoriteRemoveOtherUsersRowUntouched(t *testing.T) {
	db := newTestDB(t)
	user, _, planet := seedUserAndTargets(t, db)
	other := models.User{Username: "ben", Email: "b@x.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(&other).Error)
	repo := NewFavoriteRepository(db)

	_, err := repo.Add(other.ID, models.PlanetTarget(planet.ID))
	require.NoError(t, err)

	err = repo.Remove(user.ID, models.PlanetTarget(planet.ID))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserRepositoryLookups(t *testing.T) {
	db := newTestDB(t)
	user, _, _ := seedUserAndTargets(t, db)
	repo := NewUserRepository(db)

	byEmail, err := repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	ok, err := repo.Exists(user.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCatalogReposEmptyList(t *testing.T) {
	db := newTestDB(t)
	people, err := NewPersonRepository(db).List()
	require.NoError(t, err)
	assert.Empty(t, people)
	planets, err := NewPlanetRepository(db).List()
	require.NoError(t, err)
	assert.Empty(t, planets)
}
