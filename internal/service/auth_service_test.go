package service

import (
	"path/filepath"
	"testing"
	"time"

	"starfaves/config"
	"starfaves/internal/database"
	"starfaves/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	cfg := &config.Config{JWT: config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: time.Hour,
		Issuer:       "starfaves-test",
	}}
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(cfg, userRepo), userRepo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newTestService(t)
	u, err := svc.Register("ana", "a@x.com", "p1", true)
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	stored, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "p1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("p1")))
}

func TestRegisterDuplicateSurfacesStorageError(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Register("ana", "a@x.com", "p1", true)
	require.NoError(t, err)
	_, err = svc.Register("ana", "b@x.com", "p2", true)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Register("ana", "a@x.com", "p1", true)
	require.NoError(t, err)

	u, token, err := svc.Login("ana", "p1")
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)
	assert.NotEmpty(t, token)

	// email works as the login too
	_, _, err = svc.Login("a@x.com", "p1")
	assert.NoError(t, err)

	_, _, err = svc.Login("ana", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, _, err = svc.Login("ghost", "p1")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}
