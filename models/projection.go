package models

import "time"

// Read-time projections scanned straight from aggregate queries. Average
// fields are pointers: a store with zero ratings has no rating, not 0.

// StoreSummary is one admin store-list row.
type StoreSummary struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	AverageRating *float64 `gorm:"column:average_rating" json:"rating"`
}

// UserStoreSummary is one user store-list row, scoped to the caller: the
// overall average plus the caller's own rating when present.
type UserStoreSummary struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	OverallRating *float64 `gorm:"column:overall_rating" json:"overallRating"`
	MyRating      *int     `gorm:"column:my_rating" json:"myRating"`
}

// StoreRater is one row of the owner dashboard rater list.
type StoreRater struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `gorm:"column:rating" json:"rating"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}
