package models

import "time"

// Food safety classification shared by categories and items.
const (
	TypeSafe      = "safe"
	TypeDangerous = "dangerous"
)

// IsValidFoodType reports whether t is one of the two allowed classifications.
func IsValidFoodType(t string) bool {
	return t == TypeSafe || t == TypeDangerous
}

// Category is a named grouping of food items, tagged safe or dangerous.
// Name is a slug-like unique key; DisplayName is the human label shown
// by the client.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}
