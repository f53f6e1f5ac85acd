package models

import "time"

// RoleAdmin is the only role an AdminUser carries.
const RoleAdmin = "admin"

type AdminUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"` // always "admin"
	FullName  *string    `json:"full_name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// AppUser is a mobile-app traveller. Most profile fields are collected
// over time, so nil means "not provided yet", not "empty".
type AppUser struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	FullName       *string        `json:"full_name,omitempty"`
	Phone          *string        `json:"phone,omitempty"`
	Company        *string        `json:"company,omitempty"`
	Role           *string        `json:"role,omitempty"`
	AvatarURL      *string        `json:"avatar_url,omitempty"`
	DocumentNumber *string        `json:"document_number,omitempty"`
	PassportNumber *string        `json:"passport_number,omitempty"`
	Preferences    map[string]any `json:"preferences,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
}
