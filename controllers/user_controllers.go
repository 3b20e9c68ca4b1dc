package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storeratings/dto"
	"storeratings/response"
	"storeratings/services"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) UserController {
	return UserController{Users: users}
}

// CreateUser adds an account with an admin-chosen role.
func (u UserController) CreateUser(c *gin.Context) {
	var input dto.CreateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	id, err := u.Users.Create(input.Name, input.Email, input.Address, input.Password, input.Role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreatedResponse{ID: id})
}

// GetUsers lists users with filter/search/sort.
func (u UserController) GetUsers(c *gin.Context) {
	var query dto.UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query")
		return
	}

	users, err := u.Users.List(services.UserFilter{
		Name:    query.Name,
		Email:   query.Email,
		Address: query.Address,
		Role:    query.Role,
		Query:   query.Q,
		Sort:    query.Sort,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	rows := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		rows = append(rows, dto.NewUserResponse(user))
	}
	response.Success(c, rows)
}

// GetUserByID returns one user; owner records carry their store's average.
func (u UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	user, rating, err := u.Users.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	if user.Role.OwnsStore() {
		response.Success(c, dto.OwnerDetailResponse{
			UserResponse: dto.NewUserResponse(user),
			Rating:       rating,
		})
		return
	}
	response.Success(c, dto.NewUserResponse(user))
}
