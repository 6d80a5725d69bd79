package repository

import (
	"starfaves/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func targetScope(q *gorm.DB, userID uint, target models.FavoriteTarget) *gorm.DB {
	q = q.Where("user_id = ?", userID)
	if target.Kind == models.TargetPlanet {
		return q.Where("planet_id = ?", target.ID)
	}
	return q.Where("people_id = ?", target.ID)
}

// Add inserts one favorite row for (userID, target). Foreign-key and
// uniqueness violations surface as storage errors for the responder to
// map; there is no pre-check.
func (r *FavoriteRepository) Add(userID uint, target models.FavoriteTarget) (*models.Favorite, error) {
	f := models.NewFavorite(userID, target)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(f).Error
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Remove deletes the unique favorite matching (userID, target).
// Returns gorm.ErrRecordNotFound when no such row exists.
func (r *FavoriteRepository) Remove(userID uint, target models.FavoriteTarget) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var f models.Favorite
		if err := targetScope(tx, userID, target).First(&f).Error; err != nil {
			return err
		}
		return tx.Delete(&f).Error
	})
}

func (r *FavoriteRepository) ListByUserID(userID uint) ([]models.Favorite, error) {
	var list []models.Favorite
	err := r.db.Where("user_id = ?", userID).Find(&list).Error
	return list, err
}

func (r *FavoriteRepository) Count() (int64, error) {
	var c int64
	err := r.db.Model(&models.Favorite{}).Count(&c).Error
	return c, err
}
