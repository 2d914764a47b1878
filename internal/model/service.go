package model

import "time"

// Service is a single offering shown on the marketing site.
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"` // Lucide icon name
	Outcomes    []string  `json:"outcomes"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceUpdate holds a partial update; nil fields are left untouched.
type ServiceUpdate struct {
	Title       *string  `json:"title"`
	Subtitle    *string  `json:"subtitle"`
	Description *string  `json:"description"`
	Icon        *string  `json:"icon"`
	Outcomes    []string `json:"outcomes"`
	Order       *int     `json:"order"`
	Active      *bool    `json:"active"`
}

// ServiceListOptions filters the CMS service listing.
type ServiceListOptions struct {
	ActiveOnly bool
}
