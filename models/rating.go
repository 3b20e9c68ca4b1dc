package models

import "time"

// Rating is a single user's score for a store. The composite unique index is
// the backstop for the one-rating-per-user-per-store invariant: inserts never
// pre-check existence, the database rejects the duplicate.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_user_store" json:"userId"`
	StoreID   uint      `gorm:"not null;uniqueIndex:idx_ratings_user_store" json:"storeId"`
	Value     int       `gorm:"not null;check:value >= 1 AND value <= 5" json:"rating"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Store     Store     `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"store,omitempty"`
}
