package models

// Category groups foods the way the TACO table does
// (cereals, meats, vegetables, ...).
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Foods []Food `json:"-"`
}
