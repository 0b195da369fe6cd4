package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaan/degreeplan/internal/app/models/dto"
	"github.com/kaan/degreeplan/internal/app/services"
	"github.com/kaan/degreeplan/internal/middleware"
)

// PlanController handles degree plan operations
type PlanController struct {
	planService *services.PlanService
	logger      zerolog.Logger
}

// NewPlanController creates a new PlanController
func NewPlanController(planService *services.PlanService, logger zerolog.Logger) *PlanController {
	return &PlanController{
		planService: planService,
		logger:      logger,
	}
}

// CreatePlan creates a new degree plan
// @Summary Create a degree plan
// @Description Creates an empty degree plan, optionally bound to a degree program
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePlanRequest true "Plan information"
// @Success 201 {object} dto.APIResponse{data=models.Plan} "Plan created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans [post]
func (c *PlanController) CreatePlan(ctx *gin.Context) {
	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	plan, err := c.planService.CreatePlan(ctx.Request.Context(), middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(plan))
}

// ListPlans retrieves the user's plans
// @Summary List degree plans
// @Description Retrieves the authenticated user's plans without schedules
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Plan} "Plans retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans [get]
func (c *PlanController) ListPlans(ctx *gin.Context) {
	plans, err := c.planService.ListPlans(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plans))
}

// GetPlan retrieves a plan with its schedule
// @Summary Get a degree plan
// @Description Retrieves one of the user's plans with its full schedule
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=models.Plan} "Plan retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id} [get]
func (c *PlanController) GetPlan(ctx *gin.Context) {
	plan, err := c.planService.GetPlan(ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// DeletePlan removes a plan
// @Summary Delete a degree plan
// @Description Deletes one of the user's plans and its schedule
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Plan deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id} [delete]
func (c *PlanController) DeletePlan(ctx *gin.Context) {
	err := c.planService.DeletePlan(ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Plan deleted successfully"}))
}

// AddTerm adds a term to a plan
// @Summary Add a term
// @Description Adds a new academic term to the plan
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body dto.AddTermRequest true "Term information"
// @Success 200 {object} dto.APIResponse{data=models.Plan} "Term added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or season"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 409 {object} dto.ErrorResponse "Term already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id}/terms [post]
func (c *PlanController) AddTerm(ctx *gin.Context) {
	var req dto.AddTermRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	plan, err := c.planService.AddTerm(ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// RemoveTerm removes a term from a plan
// @Summary Remove a term
// @Description Removes a term and every course scheduled in it
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param termId path string true "Term ID" example(fall2026)
// @Success 200 {object} dto.APIResponse{data=models.Plan} "Term removed successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan or term not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id}/terms/{termId} [delete]
func (c *PlanController) RemoveTerm(ctx *gin.Context) {
	plan, err := c.planService.RemoveTerm(ctx.Request.Context(), middleware.GetUserID(ctx),
		ctx.Param("id"), ctx.Param("termId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// AddCourse validates and schedules a course into a term
// @Summary Add a course to a term
// @Description Runs the prerequisite check and, when it passes, schedules the catalog course into the term. A rejecting verdict is returned with HTTP 200 and a nil plan.
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param termId path string true "Term ID" example(fall2026)
// @Param request body dto.AddCourseRequest true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.AddCourseResponse} "Verdict and, when added, the updated plan"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan, term or course not found"
// @Failure 409 {object} dto.ErrorResponse "Course already assigned to this term"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id}/terms/{termId}/courses [post]
func (c *PlanController) AddCourse(ctx *gin.Context) {
	var req dto.AddCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.planService.AddCourse(ctx.Request.Context(), middleware.GetUserID(ctx),
		ctx.Param("id"), ctx.Param("termId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// RemoveCourse removes a course from a term
// @Summary Remove a course from a term
// @Description Removes a planned course from the given term
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param termId path string true "Term ID" example(fall2026)
// @Param code path string true "Course code" example(CS 1332)
// @Success 200 {object} dto.APIResponse{data=models.Plan} "Course removed successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan, term or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id}/terms/{termId}/courses/{code} [delete]
func (c *PlanController) RemoveCourse(ctx *gin.Context) {
	plan, err := c.planService.RemoveCourse(ctx.Request.Context(), middleware.GetUserID(ctx),
		ctx.Param("id"), ctx.Param("termId"), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// MoveCourse relocates a course between terms
// @Summary Move a course between terms
// @Description Moves a planned course from one term to another, preserving status and grade
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body dto.MoveCourseRequest true "Move instructions"
// @Success 200 {object} dto.APIResponse{data=models.Plan} "Course moved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan, term or course not found"
// @Failure 409 {object} dto.ErrorResponse "Course already assigned to the target term"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id}/courses/move [post]
func (c *PlanController) MoveCourse(ctx *gin.Context) {
	var req dto.MoveCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	plan, err := c.planService.MoveCourse(ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// UpdateCourse updates a planned course's status or grade
// @Summary Update a planned course
// @Description Changes a planned course's status or records its final grade. Setting a grade marks the course completed.
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param termId path string true "Term ID" example(fall2026)
// @Param code path string true "Course code" example(CS 1332)
// @Param request body dto.UpdateCourseRequest true "Status or grade"
// @Success 200 {object} dto.APIResponse{data=models.Plan} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status or grade"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan, term or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id}/terms/{termId}/courses/{code} [patch]
func (c *PlanController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	plan, err := c.planService.UpdateCourse(ctx.Request.Context(), middleware.GetUserID(ctx),
		ctx.Param("id"), ctx.Param("termId"), ctx.Param("code"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// ValidateCourse dry-runs the prerequisite check
// @Summary Validate a course against a plan
// @Description Runs the prerequisite check for a catalog course without modifying the plan
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param course query string true "Course code" example(CS 1332)
// @Success 200 {object} dto.APIResponse{data=planning.Verdict} "Verdict computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing course parameter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id}/validation [get]
func (c *PlanController) ValidateCourse(ctx *gin.Context) {
	code := ctx.Query("course")
	if code == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing course parameter")
		errorDetail = errorDetail.WithField("course")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	verdict, err := c.planService.ValidateCourse(ctx.Request.Context(), middleware.GetUserID(ctx),
		ctx.Param("id"), code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(verdict))
}

// GetGPA reports semester and cumulative GPA
// @Summary Get plan GPA
// @Description Computes the GPA of every term and the cumulative GPA over completed courses
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=dto.GPAResponse} "GPA computed successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id}/gpa [get]
func (c *PlanController) GetGPA(ctx *gin.Context) {
	gpa, err := c.planService.GetGPA(ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gpa))
}

// GetProgress evaluates requirement progress
// @Summary Get requirement progress
// @Description Evaluates the plan against its degree program's requirement categories
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=planning.ProgressReport} "Progress evaluated successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan or program not found"
// @Failure 409 {object} dto.ErrorResponse "Plan has no degree program assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id}/progress [get]
func (c *PlanController) GetProgress(ctx *gin.Context) {
	report, err := c.planService.GetProgress(ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}
