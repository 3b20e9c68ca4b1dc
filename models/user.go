package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `gorm:"size:60;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Address   string    `gorm:"size:400" json:"address"`
	Role      Role      `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
	Ratings   []Rating  `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
}
