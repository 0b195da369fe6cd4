package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/degreeplan/internal/app/models/dto"
	"github.com/kaan/degreeplan/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP status codes and the standard
// error envelope. Controllers call it for every error a service returns.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	// Validation
	case errors.Is(err, apperrors.ErrInvalidEmail):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidEmail, "Invalid email format")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Invalid password format")
	case errors.Is(err, apperrors.ErrInvalidGrade):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid letter grade")
	case errors.Is(err, apperrors.ErrInvalidSeason):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Season must be FALL, SPRING or SUMMER")
	case errors.Is(err, apperrors.ErrInvalidStatus):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid course status")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondWithDetails(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed", err)

	// Users
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")

	// Catalog and programs
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeCourseUnknown, "Course not found in catalog")
	case errors.Is(err, apperrors.ErrProgramNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeProgramNotFound, "Degree program not found")

	// Plans
	case errors.Is(err, apperrors.ErrPlanNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodePlanNotFound, "Plan not found")
	case errors.Is(err, apperrors.ErrPlanTermNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodePlanNotFound, "Term not found in plan")
	case errors.Is(err, apperrors.ErrTermAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeTermConflict, "Term already exists in plan")
	case errors.Is(err, apperrors.ErrCourseNotInPlan):
		respond(c, http.StatusNotFound, dto.ErrorCodePlanNotFound, "Course not found in plan")
	case errors.Is(err, apperrors.ErrCourseInTerm):
		respond(c, http.StatusConflict, dto.ErrorCodeCourseConflict, "Course already assigned to this term")
	case errors.Is(err, apperrors.ErrPlanHasNoProgram):
		respond(c, http.StatusConflict, dto.ErrorCodeProgramUnset, "Plan has no degree program assigned")

	// Generic resources
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")

	default:
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error: dto.NewErrorDetail(code, message),
	})
}

func respondWithDetails(c *gin.Context, status int, code dto.ErrorCode, message string, err error) {
	errorDetail := dto.NewErrorDetail(code, message)
	if err != nil {
		errorDetail = errorDetail.WithDetails(err.Error())
	}
	c.JSON(status, dto.APIResponse{
		Error: errorDetail,
	})
}
