package models

import "errors"

// Application-wide standard errors.
var (
	// Validation and authorization
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")

	// Generic and entity-specific not-found
	ErrNotFound        = errors.New("resource not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDeckNotFound    = errors.New("deck not found")
	ErrCardNotFound    = errors.New("card not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrWarningNotFound = errors.New("warning not found")

	// Account errors
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserLocked         = errors.New("user account is locked")

	// Moderation
	ErrDeckHidden = errors.New("deck is hidden by an administrator")

	// Token errors
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenNotFound  = errors.New("token not found in storage")

	// Remote collaborators
	ErrSuggestionFailed = errors.New("answer suggestion failed")

	ErrInternalServer = errors.New("internal server error")
)
