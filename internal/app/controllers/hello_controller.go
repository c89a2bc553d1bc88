package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmshub/lms-backend/internal/app/models/dto"
	"github.com/lmshub/lms-backend/internal/app/repositories"
	"github.com/lmshub/lms-backend/internal/middleware"
)

// HelloController handles the connectivity check endpoints
type HelloController struct {
	userRepo *repositories.UserRepository
}

// NewHelloController creates a new HelloController
func NewHelloController(userRepo *repositories.UserRepository) *HelloController {
	return &HelloController{
		userRepo: userRepo,
	}
}

// Hello godoc
// @Summary Public connectivity check
// @Description Returns a greeting without requiring authentication
// @Tags hello
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HelloResponse}
// @Router /hello [get]
func (c *HelloController) Hello(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HelloResponse{
		Message:   "Hello from the LMS API",
		Timestamp: time.Now(),
	}))
}

// HelloAuthenticated godoc
// @Summary Authenticated connectivity check
// @Description Returns a personalized greeting for the authenticated member
// @Tags hello
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.HelloResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Router /hello/me [get]
func (c *HelloController) HelloAuthenticated(ctx *gin.Context) {
	member := middleware.MemberFromContext(ctx)

	greeting := member
	if user, err := c.userRepo.GetByName(ctx.Request.Context(), member); err == nil && user.FullName != "" {
		greeting = user.FullName
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HelloResponse{
		Message:   fmt.Sprintf("Hello, %s", greeting),
		User:      member,
		Timestamp: time.Now(),
	}))
}
