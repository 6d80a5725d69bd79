package models

import "time"

type Planet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
}

func (Planet) TableName() string {
	return "planets"
}
