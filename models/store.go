package models

import "time"

type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `gorm:"size:60;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Address   string    `gorm:"size:400" json:"address"`
	OwnerID   *uint     `gorm:"index" json:"ownerId,omitempty"`
	Owner     *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`
	Ratings   []Rating  `gorm:"foreignKey:StoreID" json:"ratings,omitempty"`
}
