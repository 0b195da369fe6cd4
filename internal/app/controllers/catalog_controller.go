package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaan/degreeplan/internal/app/models/dto"
	"github.com/kaan/degreeplan/internal/app/services"
	"github.com/kaan/degreeplan/internal/middleware"
)

// CatalogController handles catalog course operations
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCourses retrieves catalog courses
// @Summary List catalog courses
// @Description Retrieves catalog courses with optional subject and search filters
// @Tags courses
// @Produce json
// @Param subject query string false "Filter by subject code" example(CS)
// @Param q query string false "Search in course code and title"
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	courses, total, err := c.catalogService.ListCourses(ctx.Request.Context(),
		ctx.Query("subject"), ctx.Query("q"), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseListResponse{
		Courses:  courses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}))
}

// GetCourse retrieves a single catalog course
// @Summary Get a catalog course
// @Description Retrieves a catalog course by its code, including prerequisite expressions
// @Tags courses
// @Produce json
// @Param code path string true "Course code" example(CS 1332)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	course, err := c.catalogService.GetCourse(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}
