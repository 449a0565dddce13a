package domain

import "errors"

const (
	RoleDonor       = "donor"
	RoleBeneficiary = "beneficiary"
	RoleAdmin       = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// AuthorizeOwner is the single ownership check used across services: the
// actor must either own the resource or hold the admin role.
func AuthorizeOwner(actorID, actorRole, ownerID string) error {
	if actorID == ownerID || actorRole == RoleAdmin {
		return nil
	}
	return ErrUserNotAllowed
}
