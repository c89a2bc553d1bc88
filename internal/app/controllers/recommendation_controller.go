package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmshub/lms-backend/internal/app/models/dto"
	"github.com/lmshub/lms-backend/internal/app/services"
	"github.com/lmshub/lms-backend/internal/middleware"
)

// RecommendationController handles course recommendation requests
type RecommendationController struct {
	recommendationService services.RecommendationService
}

// NewRecommendationController creates a new RecommendationController
func NewRecommendationController(recommendationService services.RecommendationService) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// GetRecommendations godoc
// @Summary Get course recommendations
// @Description Retrieve scored course recommendations for the authenticated member
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RecommendedCourse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse
// @Router /recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	member := middleware.MemberFromContext(ctx)

	recommendations, err := c.recommendationService.GetRecommendations(ctx.Request.Context(), member)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(recommendations))
}
