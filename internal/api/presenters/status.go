package presenters

import (
	"errors"

	"foodshare-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// StatusCode maps domain sentinel errors onto HTTP status codes: missing
// entities to 404, ownership/role failures to 403, lifecycle violations to
// 409, malformed input to 400 and anything unexpected to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrDonationNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedDonationAccess),
		errors.Is(err, domain.ErrUnauthorizedRequestAccess),
		errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrNotAdmin):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrDonationNotEditable),
		errors.Is(err, domain.ErrDonationStateChanged),
		errors.Is(err, domain.ErrDonationNotAvailable),
		errors.Is(err, domain.ErrRequestNotPending):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPickupWindow),
		errors.Is(err, domain.ErrInvalidFoodCategory),
		errors.Is(err, domain.ErrInvalidDonationStatus),
		errors.Is(err, domain.ErrOnlyBeneficiariesMayRequest),
		errors.Is(err, domain.ErrInvalidRewardPoints),
		errors.Is(err, domain.ErrEmptyRewardReason),
		errors.Is(err, domain.ErrInvalidAuditAction),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrMissingCoordinates),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
