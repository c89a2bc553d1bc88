package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmshub/lms-backend/internal/app/models/dto"
	"github.com/lmshub/lms-backend/internal/app/services"
	"github.com/lmshub/lms-backend/internal/middleware"
)

// DashboardController handles dashboard aggregation requests
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get the member dashboard
// @Description Retrieve the authenticated member's enrolled courses, statistics and recent activity
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	member := middleware.MemberFromContext(ctx)

	dashboard, err := c.dashboardService.GetDashboard(ctx.Request.Context(), member)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}
