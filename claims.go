package auth

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// StringClaim decodes JSON strings and treats any other value as absent.
// Issuers have shipped numeric user_id payloads before; those must read as
// "claim not present", not as a parse failure.
type StringClaim string

func (s *StringClaim) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = StringClaim(v)
	return nil
}

// TokenClaims carries the two identity claims Observer tokens are issued
// with. The password login flow sets user_id, the external identity flow
// sets sub (conventionally the email); either one resolves a principal.
type TokenClaims struct {
	jwt.RegisteredClaims
	Subject StringClaim `json:"sub,omitempty"`
	UserID  StringClaim `json:"user_id,omitempty"`
}

// UserIdentifier returns the user_id claim, empty when absent.
func (c *TokenClaims) UserIdentifier() string {
	return string(c.UserID)
}

// EmailSubject returns the sub claim, empty when absent.
func (c *TokenClaims) EmailSubject() string {
	return string(c.Subject)
}

// HasIdentity reports whether at least one identity claim is present.
func (c *TokenClaims) HasIdentity() bool {
	return c.UserID != "" || c.Subject != ""
}

// IsTestIdentity reports whether either claim names the reserved identity.
func (c *TokenClaims) IsTestIdentity() bool {
	return string(c.UserID) == TestUserID || string(c.Subject) == TestUserID
}
