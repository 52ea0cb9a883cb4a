package models

import "gorm.io/gorm"

// DefaultImageURL is the placeholder avatar applied when a user submits no image.
const DefaultImageURL = "https://cdn-icons-png.flaticon.com/512/149/149071.png"

// User is a blog author. Every post belongs to exactly one user.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:15;not null" json:"first_name"`
	LastName  string `gorm:"size:15;not null" json:"last_name"`
	ImageURL  string `gorm:"not null" json:"image_url"`
	Posts     []Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// FullName joins first and last name for display. Derived, never stored.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// BeforeSave hook applies the placeholder avatar whenever the field is left empty,
// on create and on edit alike.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.ImageURL == "" {
		u.ImageURL = DefaultImageURL
	}
	return nil
}
