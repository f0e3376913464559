package errs

import "errors"

// Domain-specific sentinel errors for the CQRS usecase layers
var (
	// Pool errors
	ErrPoolNotFound          = errors.New("pool not found")
	ErrShortNameTaken        = errors.New("short name already in use")
	ErrQuantityBelowReserved = errors.New("quantity below highest reserved number")
	ErrNotMember             = errors.New("user is not a member of the pool")
	ErrNotOwner              = errors.New("user is not the owner of the pool")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotAlreadyReserved = errors.New("slot already reserved")

	// Invite errors
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteAlreadyPending = errors.New("invite request already pending")
	ErrInviteNotPending     = errors.New("invite is not pending")
	ErrAlreadyMember        = errors.New("user is already a member of the pool")

	// Guest errors
	ErrGuestNotFound    = errors.New("guest not found")
	ErrGroupNotFound    = errors.New("guest group not found")
	ErrGuestNotInGroup  = errors.New("guest does not belong to the group")
	ErrTokenNotFound    = errors.New("checkin token not found")
	ErrCredentialRender = errors.New("credential rendering failed")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")

	// Validation / operation errors
	ErrDomainValidation        = errors.New("domain validation error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
