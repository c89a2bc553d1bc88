package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmshub/lms-backend/internal/app/models/dto"
	"github.com/lmshub/lms-backend/internal/app/services"
	"github.com/lmshub/lms-backend/internal/middleware"
)

// CourseController handles course search and enrollment requests
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// SearchCourses godoc
// @Summary Search published courses
// @Description Search published courses by title or description, optionally filtered by owner or tag
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param query query string false "Text to match against title and description"
// @Param owner query string false "Filter by course owner"
// @Param tag query string false "Filter by tag"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseSummary}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	query := ctx.Query("query")
	filters := services.SearchFilters{
		Owner: ctx.Query("owner"),
		Tag:   ctx.Query("tag"),
	}

	courses, err := c.courseService.SearchCourses(ctx.Request.Context(), query, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Enroll the authenticated member in a course. Enrolling twice is reported, not an error.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseName path string true "Course identifier"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollResult}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/{courseName}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	member := middleware.MemberFromContext(ctx)
	courseName := ctx.Param("courseName")

	result, err := c.courseService.Enroll(ctx.Request.Context(), member, courseName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
