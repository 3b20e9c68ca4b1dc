package services

import (
	"database/sql"

	"gorm.io/gorm"
)

// averageRating computes a store's mean rating at read time. A store with no
// ratings yields nil, never zero, so callers can serialize it as null.
func averageRating(db *gorm.DB, storeID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := db.Raw("SELECT AVG(value) FROM ratings WHERE store_id = ?", storeID).Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
