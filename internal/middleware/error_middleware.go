package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
	"github.com/tanish/hostelhub/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Unknown errors
// are logged and reported as a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// 400 - validation family
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrInvalidDepartment),
		errors.Is(err, apperrors.ErrInvalidStatus):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	case errors.Is(err, apperrors.ErrIllegalTransition):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Illegal status transition")))
	case errors.Is(err, apperrors.ErrNoHostelAssigned):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student is not assigned to any hostel")))

	// 401 - authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenMissing):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTokenMissing, "Token missing")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	// 403 - authorization
	case errors.Is(err, apperrors.ErrRoleMismatch):
		c.JSON(403, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeRoleMismatch, "Token does not carry the required role")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())))

	// 404 - missing resources
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrWardenNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrHostelNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrComplaintNotFound),
		errors.Is(err, apperrors.ErrFoodRequestNotFound),
		errors.Is(err, apperrors.ErrItemNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	// 409 - conflicts
	case errors.Is(err, apperrors.ErrWardenExists),
		errors.Is(err, apperrors.ErrHostelExists),
		errors.Is(err, apperrors.ErrDepartmentExists),
		errors.Is(err, apperrors.ErrRollNoExists),
		errors.Is(err, apperrors.ErrEmailExists),
		errors.Is(err, apperrors.ErrContactExists),
		errors.Is(err, apperrors.ErrFoodRequestExists),
		errors.Is(err, apperrors.ErrItemExists),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeCapacityExceeded, "Hostel capacity exceeded")))

	default:
		logger.Error().Err(err).Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
