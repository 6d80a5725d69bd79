package repository

import (
	"starfaves/internal/models"

	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) List() ([]models.Person, error) {
	var people []models.Person
	err := r.db.Find(&people).Error
	return people, err
}

func (r *PersonRepository) GetByID(id uint) (*models.Person, error) {
	var p models.Person
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
