// Package models contains data structures for the application's domain models.
package models

// User is an account on the caregiving platform. A user takes part in
// matching through the dependent one-to-one Caregiver or Member row.
type User struct {
	UserID             uint   `gorm:"primaryKey" json:"user_id"`
	Email              string `gorm:"uniqueIndex;not null" json:"email"`
	GivenName          string `gorm:"not null" json:"given_name"`
	Surname            string `gorm:"not null" json:"surname"`
	City               string `json:"city"`
	PhoneNumber        string `json:"phone_number"`
	ProfileDescription string `json:"profile_description"`
	Password           string `gorm:"not null" json:"-"` // bcrypt hash
}
