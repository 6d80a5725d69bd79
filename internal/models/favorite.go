package models

import "time"

// Favorite links a user to a bookmarked person or planet. Exactly one
// of PlanetID/PeopleID is set; rows are only built through NewFavorite
// so the invalid both-null/both-set states cannot be constructed, and
// the check constraint keeps hand-written SQL honest too.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_fav_user_planet;uniqueIndex:idx_fav_user_people" json:"user_id"`
	PlanetID  *uint     `gorm:"uniqueIndex:idx_fav_user_planet;check:chk_fav_target,(planet_id IS NULL) <> (people_id IS NULL)" json:"planet_id"`
	PeopleID  *uint     `gorm:"uniqueIndex:idx_fav_user_people" json:"people_id"`
	CreatedAt time.Time `json:"-"`

	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Planet *Planet `gorm:"foreignKey:PlanetID" json:"-"`
	Person *Person `gorm:"foreignKey:PeopleID" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}

type TargetKind string

const (
	TargetPlanet TargetKind = "planet"
	TargetPerson TargetKind = "person"
)

// FavoriteTarget is the tagged-variant view of a favorite's reference:
// a planet id or a person id, never both.
type FavoriteTarget struct {
	Kind TargetKind
	ID   uint
}

func PlanetTarget(id uint) FavoriteTarget {
	return FavoriteTarget{Kind: TargetPlanet, ID: id}
}

func PersonTarget(id uint) FavoriteTarget {
	return FavoriteTarget{Kind: TargetPerson, ID: id}
}

func NewFavorite(userID uint, target FavoriteTarget) *Favorite {
	f := &Favorite{UserID: userID}
	id := target.ID
	switch target.Kind {
	case TargetPlanet:
		f.PlanetID = &id
	case TargetPerson:
		f.PeopleID = &id
	}
	return f
}

// Target returns the tagged view of the row's reference.
func (f *Favorite) Target() FavoriteTarget {
	if f.PlanetID != nil {
		return PlanetTarget(*f.PlanetID)
	}
	return PersonTarget(*f.PeopleID)
}
