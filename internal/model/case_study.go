package model

import "time"

// CaseStudy is a portfolio entry shown on the marketing site.
type CaseStudy struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Subtitle  string    `json:"subtitle"`
	Challenge string    `json:"challenge"`
	Position  string    `json:"position"`
	Identity  []string  `json:"identity"`
	Execution []string  `json:"execution"`
	Impact    []string  `json:"impact"`
	Image     *string   `json:"image"`
	Featured  bool      `json:"featured"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CaseStudyUpdate holds a partial update; nil fields are left untouched.
type CaseStudyUpdate struct {
	Title     *string  `json:"title"`
	Category  *string  `json:"category"`
	Subtitle  *string  `json:"subtitle"`
	Challenge *string  `json:"challenge"`
	Position  *string  `json:"position"`
	Identity  []string `json:"identity"`
	Execution []string `json:"execution"`
	Impact    []string `json:"impact"`
	Image     *string  `json:"image"`
	Featured  *bool    `json:"featured"`
	Order     *int     `json:"order"`
	Active    *bool    `json:"active"`
}

// CaseStudyListOptions filters the case study listing.
type CaseStudyListOptions struct {
	ActiveOnly   bool
	FeaturedOnly bool
}
