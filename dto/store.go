package dto

// CreateStoreRequest defines the admin store-creation payload
type CreateStoreRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID *uint  `json:"ownerId"`
}

// StoreListQuery defines the admin store-list filters
type StoreListQuery struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Address string `form:"address"`
	Q       string `form:"q"`
	Sort    string `form:"sort"`
}

// UserStoreListQuery defines the user-facing store search
type UserStoreListQuery struct {
	Q string `form:"q"`
}

// SuggestResponse carries fuzzy store-name suggestions for a missed search
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}
