package repository

import (
	"starfaves/internal/models"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) List() ([]models.Planet, error) {
	var planets []models.Planet
	err := r.db.Find(&planets).Error
	return planets, err
}

func (r *PlanetRepository) GetByID(id uint) (*models.Planet, error) {
	var p models.Planet
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
