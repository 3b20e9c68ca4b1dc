package dto

import "storeratings/models"

// SubmitRatingRequest defines the first-time rating payload
type SubmitRatingRequest struct {
	StoreID uint `json:"storeId" binding:"required"`
	Rating  int  `json:"rating"`
}

// ModifyRatingRequest defines the rating-update payload; the store comes
// from the path.
type ModifyRatingRequest struct {
	Rating int `json:"rating"`
}

// OwnerDashboardResponse is the owner's view of their store
type OwnerDashboardResponse struct {
	AverageRating *float64            `json:"averageRating"`
	Raters        []models.StoreRater `json:"raters"`
}

// AdminDashboardResponse carries the three total counts
type AdminDashboardResponse struct {
	Users   int64 `json:"users"`
	Stores  int64 `json:"stores"`
	Ratings int64 `json:"ratings"`
}
