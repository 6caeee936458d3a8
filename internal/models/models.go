package models

import (
	"time"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	MobileNumber string    `json:"mobile_number" db:"mobile_number"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Ad struct {
	ID             int64     `json:"id" db:"id"`
	PetName        string    `json:"pet_name" db:"pet_name"`
	PetType        string    `json:"pet_type" db:"pet_type"`
	Location       string    `json:"location" db:"location"`
	ContactDetails string    `json:"contact_details" db:"contact_details"`
	ImageKey       string    `json:"-" db:"image_key"`
	ImageURL       string    `json:"image_url" db:"-"`
	UserID         int64     `json:"user_id" db:"user_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
