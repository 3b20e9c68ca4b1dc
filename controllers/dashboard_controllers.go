package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storeratings/dto"
	"storeratings/models"
	"storeratings/response"
	"storeratings/services"
)

type DashboardController struct {
	DB      *gorm.DB
	Ratings *services.RatingService
}

func NewDashboardController(db *gorm.DB, ratings *services.RatingService) DashboardController {
	return DashboardController{DB: db, Ratings: ratings}
}

// AdminDashboard returns the three total counts. Three independent reads; a
// snapshot across them is not guaranteed and not needed.
func (d DashboardController) AdminDashboard(c *gin.Context) {
	var out dto.AdminDashboardResponse

	if err := d.DB.Model(&models.User{}).Count(&out.Users).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := d.DB.Model(&models.Store{}).Count(&out.Stores).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := d.DB.Model(&models.Rating{}).Count(&out.Ratings).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, out)
}

// OwnerDashboard returns the caller's store average and rater list.
func (d DashboardController) OwnerDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	avg, raters, err := d.Ratings.OwnerDashboard(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if raters == nil {
		raters = []models.StoreRater{}
	}
	response.Success(c, dto.OwnerDashboardResponse{
		AverageRating: avg,
		Raters:        raters,
	})
}
