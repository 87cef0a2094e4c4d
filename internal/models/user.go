package models

import "time"

// User is an account identified by its OAuth subject id. The id comes from
// the identity provider and is never reassigned; profile fields are whatever
// the first successful login reported (first write wins).
type User struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	Name       string    `gorm:"size:128" json:"username"`
	Email      string    `gorm:"size:128" json:"email"`
	ProfilePic string    `gorm:"size:512" json:"profile_pic"`
	CreatedAt  time.Time `json:"-"`
}
