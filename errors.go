package auth

import (
	"github.com/goliatone/go-errors"
)

// Text codes attached to the structured errors the auth core produces.
const (
	TextCodeTokenMalformed   = "TOKEN_MALFORMED"
	TextCodeTokenExpired     = "TOKEN_EXPIRED"
	TextCodeUserNotFound     = "USER_NOT_FOUND"
	TextCodeStoreUnavailable = "STORE_UNAVAILABLE"
	TextCodeRecordNotFound   = "RECORD_NOT_FOUND"
)

// ErrTokenMalformed covers signature mismatches, unsupported algorithms,
// and tokens missing both identity claims.
var ErrTokenMalformed = errors.New("invalid authentication token", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned for tokens past their exp claim.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrUserNotFound means the claims validated but neither lookup matched a
// stored user.
var ErrUserNotFound = errors.New("user not found", errors.CategoryAuth).
	WithTextCode(TextCodeUserNotFound).
	WithCode(errors.CodeUnauthorized)

// ErrStoreUnavailable wraps user store I/O failures. It is a server error,
// never an authentication error: the core must not claim a user does not
// exist when the store could not be consulted.
var ErrStoreUnavailable = errors.New("user store unavailable", errors.CategoryInternal).
	WithTextCode(TextCodeStoreUnavailable)

// ErrUserRecordNotFound is the sentinel store adapters return for lookups
// that match nothing. Adapters stay decoupled from the request-facing
// taxonomy above; the resolver maps absence to ErrUserNotFound once both
// lookups are exhausted.
var ErrUserRecordNotFound = errors.New("user record not found", errors.CategoryNotFound).
	WithTextCode(TextCodeRecordNotFound)

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var rich *errors.Error
	if !errors.As(err, &rich) {
		return false
	}
	return string(rich.TextCode) == code
}

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	return hasTextCode(err, TextCodeTokenExpired)
}

// IsMalformedError will check for malformed or otherwise invalid tokens
func IsMalformedError(err error) bool {
	return hasTextCode(err, TextCodeTokenMalformed)
}

// IsUserNotFoundError will check for unresolved identities
func IsUserNotFoundError(err error) bool {
	return hasTextCode(err, TextCodeUserNotFound)
}

// IsStoreUnavailableError will check for user store outages
func IsStoreUnavailableError(err error) bool {
	return hasTextCode(err, TextCodeStoreUnavailable)
}

// IsAuthError reports whether err is one of the three authentication-kind
// failures, as opposed to a store outage or an unrelated error. The
// optional middleware form absorbs exactly these.
func IsAuthError(err error) bool {
	return IsMalformedError(err) || IsTokenExpiredError(err) || IsUserNotFoundError(err)
}
