package auth

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"
)

// IdentityResolver maps validated token claims to a stored principal.
// Resolution is deterministic: reserved identity, then id lookup, then
// email lookup. Each step that matches terminates resolution.
type IdentityResolver struct {
	store  UserStore
	logger Logger
	now    func() time.Time
}

// NewIdentityResolver creates a resolver backed by the given user store.
func NewIdentityResolver(store UserStore, logger Logger) *IdentityResolver {
	if logger == nil {
		logger = defLogger{}
	}
	return &IdentityResolver{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the clock used to fabricate the reserved-identity
// principal. Meant for tests.
func (r *IdentityResolver) WithClock(now func() time.Time) *IdentityResolver {
	if now != nil {
		r.now = now
	}
	return r
}

// Resolve produces the principal for the given claims. The email lookup
// only runs when no user_id was present or the id lookup matched nothing;
// an id match wins even when both claims are set.
func (r *IdentityResolver) Resolve(ctx context.Context, claims *TokenClaims) (*Principal, error) {
	if claims == nil || !claims.HasIdentity() {
		return nil, ErrUserNotFound
	}

	if claims.IsTestIdentity() {
		return TestPrincipal(r.now()), nil
	}

	if id := claims.UserIdentifier(); id != "" {
		user, err := r.findOne(ctx, id, r.store.FindByID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
	}

	if email := claims.EmailSubject(); email != "" {
		user, err := r.findOne(ctx, email, r.store.FindByEmail)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
	}

	return nil, ErrUserNotFound
}

// findOne normalizes the adapter contract: absence yields (nil, nil) so the
// caller can fall through, anything else is a store outage.
func (r *IdentityResolver) findOne(ctx context.Context, key string, lookup func(context.Context, string) (*Principal, error)) (*Principal, error) {
	user, err := lookup(ctx, key)
	if err == nil {
		return user, nil
	}

	if errors.Is(err, ErrUserRecordNotFound) {
		return nil, nil
	}

	r.logger.Error("Resolve user store lookup failed", "error", err)
	return nil, errors.Wrap(err, ErrStoreUnavailable.Category, ErrStoreUnavailable.Message).
		WithTextCode(ErrStoreUnavailable.TextCode)
}
