package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/service/auth"
	"github.com/phrazzld/forum-api/internal/store"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes.
// Domain errors are classified by their Kind; the outermost *domain.Error in
// the chain wins, so a masked failure stays a 500 whatever it wraps.
func MapErrorToStatusCode(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}

	if de, ok := domain.AsError(err); ok {
		return statusForKind(de.Kind)
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

func statusForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Domain errors carry a client-safe Message;
// everything else is matched against known sentinels.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return unexpectedErrorMessage
	}

	if de, ok := domain.AsError(err); ok {
		if de.Message == "" {
			return unexpectedErrorMessage
		}
		return de.Message
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, auth.ErrMissingToken):
		return "Authorization header required"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken):
		return "Invalid refresh token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrMaintopicNotFound):
		return "Maintopic not found"

	case errors.Is(err, store.ErrDiscussionNotFound):
		return "Discussion not found"

	case errors.Is(err, store.ErrRoleNotFound):
		return "Role not found"

	case store.IsNotFoundError(err):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrLoginIDExists):
		return "Login ID already exists"

	case errors.Is(err, store.ErrRoleExists):
		return "Role already exists"

	case store.IsDuplicateError(err):
		return "Resource already exists"

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return unexpectedErrorMessage
	}
}

// GetErrorType returns the machine-readable error code sent in the "type"
// field of error responses.
func GetErrorType(err error) string {
	if err == nil {
		return domain.KindInternal.String()
	}

	if de, ok := domain.AsError(err); ok && de.Type != "" {
		return de.Type
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrExpiredRefreshToken):
		return "token_expired"
	case errors.Is(err, store.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, store.ErrMaintopicNotFound):
		return "maintopic_not_found"
	case errors.Is(err, store.ErrDiscussionNotFound):
		return "discussion_not_found"
	case errors.Is(err, store.ErrRoleNotFound):
		return "role_not_found"
	case errors.Is(err, store.ErrEmailExists):
		return "email_exists"
	case errors.Is(err, store.ErrLoginIDExists):
		return "login_id_exists"
	case errors.Is(err, store.ErrRoleExists):
		return "role_already_exists"
	}

	switch MapErrorToStatusCode(err) {
	case http.StatusUnauthorized:
		return domain.KindUnauthorized.String()
	case http.StatusNotFound:
		return domain.KindNotFound.String()
	case http.StatusConflict:
		return domain.KindConflict.String()
	case http.StatusBadRequest:
		return domain.KindBadRequest.String()
	default:
		return domain.KindInternal.String()
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming the first failing field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		field := fe.Field()
		if fe.Tag() != "" {
			return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fe.Tag()))
		}
		return fmt.Sprintf("Invalid %s", field)
	}

	errMsg := err.Error()

	// Example format: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "required_without":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
