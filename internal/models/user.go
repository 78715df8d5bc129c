package models

import "time"

// Roles a user can hold. Exactly one owner exists in steady state; the role
// is claimed by the first registered user and is immutable afterwards.
const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered customer or staff member.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password  string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Role      string    `json:"role" gorm:"type:varchar(20)"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns a copy of the user with the password hash stripped.
func (u User) Public() User {
	u.Password = ""
	return u
}
