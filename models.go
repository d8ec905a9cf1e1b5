package auth

import (
	"time"
)

// TestUserID is the reserved identity honored by the resolver. Tokens that
// carry it in either claim authenticate without a user record existing.
const TestUserID = "test-user-123"

// Principal is the authenticated user descriptor handlers receive. It is
// built once per request and never written back to the store.
type Principal struct {
	ID         string    `json:"id,omitempty"`
	Email      string    `json:"email,omitempty"`
	Name       string    `json:"name,omitempty"`
	Picture    string    `json:"picture,omitempty"`
	ExternalID string    `json:"external_id,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	LastLogin  time.Time `json:"last_login,omitempty"`
	IsActive   bool      `json:"is_active,omitempty"`
}

// IsTestUser reports whether the principal is the fabricated reserved
// identity rather than a stored record.
func (p *Principal) IsTestUser() bool {
	return p != nil && p.ID == TestUserID
}

// TestPrincipal fabricates the principal returned for the reserved
// identity. The account reads as three days old with a fresh login so
// downstream "member since" and "last seen" displays stay plausible.
func TestPrincipal(now time.Time) *Principal {
	return &Principal{
		ID:         TestUserID,
		Email:      "test@example.com",
		Name:       "Test User",
		Picture:    "https://via.placeholder.com/40",
		ExternalID: "",
		CreatedAt:  now.Add(-3 * 24 * time.Hour),
		LastLogin:  now,
		IsActive:   true,
	}
}
