package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storeratings/dto"
	"storeratings/response"
	"storeratings/services"
)

type RatingController struct {
	Ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) RatingController {
	return RatingController{Ratings: ratings}
}

// SubmitRating inserts the caller's first rating for a store. Submitting
// again for the same store is a conflict; the modify endpoint is the only
// way to change an existing rating.
func (r RatingController) SubmitRating(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if err := r.Ratings.Submit(userID, input.StoreID, input.Rating); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, nil)
}

// ModifyRating updates the caller's existing rating for the store in the
// path and refreshes its timestamp.
func (r RatingController) ModifyRating(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	storeID, err := strconv.ParseUint(c.Param("storeId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid storeId")
		return
	}

	var input dto.ModifyRatingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if err := r.Ratings.Modify(userID, uint(storeID), input.Rating); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
