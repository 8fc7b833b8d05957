package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linkly-be/internal/middleware"
	"linkly-be/internal/models"
	"linkly-be/internal/service"
)

type UserController struct {
	authService service.AuthService
}

func NewUserController(authService service.AuthService) *UserController {
	return &UserController{
		authService: authService,
	}
}

// Signup handles POST /api/user/signup
func (uc *UserController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	response, err := uc.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Signin handles POST /api/user/signin
func (uc *UserController) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		return
	}

	response, err := uc.authService.Signin(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/user/update (authenticated)
func (uc *UserController) Update(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := uc.authService.UpdateProfile(c.Request.Context(), middleware.Email(c), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// Delete handles DELETE /api/user/delete (authenticated). Links owned by the
// user are not deleted with it.
func (uc *UserController) Delete(c *gin.Context) {
	if err := uc.authService.DeleteAccount(c.Request.Context(), middleware.Email(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// Profile handles GET /api/user/profile (authenticated)
func (uc *UserController) Profile(c *gin.Context) {
	profile, err := uc.authService.Profile(c.Request.Context(), middleware.Email(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
