package controllers

import (
	"github.com/gin-gonic/gin"

	"storeratings/dto"
	"storeratings/response"
	"storeratings/services"
)

const maxSuggestions = 5

type StoreController struct {
	Stores *services.StoreService
}

func NewStoreController(stores *services.StoreService) StoreController {
	return StoreController{Stores: stores}
}

// CreateStore adds a store, optionally assigned to an owner account.
func (s StoreController) CreateStore(c *gin.Context) {
	var input dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	id, err := s.Stores.Create(input.Name, input.Email, input.Address, input.OwnerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreatedResponse{ID: id})
}

// GetStores lists stores for admins with per-row average ratings.
func (s StoreController) GetStores(c *gin.Context) {
	var query dto.StoreListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query")
		return
	}

	rows, err := s.Stores.List(services.StoreFilter{
		Name:    query.Name,
		Email:   query.Email,
		Address: query.Address,
		Query:   query.Q,
		Sort:    query.Sort,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

// GetUserStores lists stores for the signed-in user, each row carrying the
// overall average and the caller's own rating.
func (s StoreController) GetUserStores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var query dto.UserStoreListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query")
		return
	}

	rows, err := s.Stores.ListForUser(userID, query.Q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

// SuggestStores offers closest store names for a search that found nothing.
func (s StoreController) SuggestStores(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Query is required")
		return
	}

	names, err := s.Stores.Names()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.SuggestResponse{
		Suggestions: services.SuggestStoreNames(query, names, maxSuggestions),
	})
}
