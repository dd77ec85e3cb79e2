// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package model

// Service is a freight service offering. Slug is the natural primary key and
// must be URL-safe; Features and Benefits keep their authoring order.
type Service struct {
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Icon             string   `json:"icon"`
	Image            *string  `json:"image,omitempty"`
	Features         []string `json:"features"`
	Benefits         []string `json:"benefits"`
}

// Testimonial is a customer quote shown on the home page. ID is an opaque
// string chosen by the admin panel (timestamp-derived in practice).
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// Testimonial rating bounds, inclusive.
const (
	RatingMin = 1
	RatingMax = 5
)

// ValidRating reports whether r is within the accepted 1..5 range.
func ValidRating(r int) bool {
	return r >= RatingMin && r <= RatingMax
}

// FAQ is a frequently-asked question shown on the marketing pages.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}
