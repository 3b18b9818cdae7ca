package model

import "gorm.io/gorm"

// User is an account record. The role decides whether the user may publish a
// therapist profile or only consume the wellness features.
type User struct {
	gorm.Model
	Name         string `json:"name" gorm:"column:name"`
	Email        string `json:"email" gorm:"column:email;uniqueIndex"`
	Password     string `json:"-" gorm:"column:password"`
	PasswordSalt string `json:"-" gorm:"column:password_salt"`
	RoleID       uint32 `json:"role_id" gorm:"column:role_id"`
}

// PublicUser is the subset of User embedded in therapist search results.
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips credential fields from a user record.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
