package auth

import (
	"context"
	"strings"
	"time"
)

// Auther wires the token validator and the identity resolver into the full
// authentication pipeline. It holds no per-request state; a single instance
// serves concurrent requests.
type Auther struct {
	validator  TokenValidator
	resolver   *IdentityResolver
	store      UserStore
	signingKey []byte
	adminEmail string
	logger     Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(store UserStore, cfg Config) *Auther {
	logger := Logger(defLogger{})
	signingKey := []byte(cfg.GetSigningKey())

	return &Auther{
		validator:  NewTokenService(signingKey, logger),
		resolver:   NewIdentityResolver(store, logger),
		store:      store,
		signingKey: signingKey,
		adminEmail: cfg.GetAdminEmail(),
		logger:     logger,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger == nil {
		return s
	}
	s.logger = logger
	s.validator = NewTokenService(s.signingKey, logger)
	s.resolver = NewIdentityResolver(s.store, logger).WithClock(s.resolver.now)
	return s
}

// WithTokenValidator sets a custom token validator for externally issued tokens.
func (s *Auther) WithTokenValidator(validator TokenValidator) *Auther {
	if validator != nil {
		s.validator = validator
	}
	return s
}

// WithClock overrides the clock used for the reserved-identity principal.
func (s *Auther) WithClock(now func() time.Time) *Auther {
	s.resolver.WithClock(now)
	return s
}

var _ Authenticator = (*Auther)(nil)

// Authenticate runs the full pipeline: verify the credential, extract the
// identity claims, resolve them to a principal. Failures map to the error
// taxonomy in errors.go and are never recovered here.
func (s *Auther) Authenticate(ctx context.Context, token string) (*Principal, error) {
	claims, err := s.validator.Validate(token)
	if err != nil {
		s.logger.Debug("Authenticate token rejected", "error", err)
		return nil, err
	}

	user, err := s.resolver.Resolve(ctx, claims)
	if err != nil {
		if IsStoreUnavailableError(err) {
			s.logger.Error("Authenticate user store unavailable", "error", err)
		} else {
			s.logger.Debug("Authenticate identity not resolved", "error", err)
		}
		return nil, err
	}

	return user, nil
}

// IsAdmin reports whether email belongs to the configured administrator.
// The comparison is case-insensitive on the whole address; there is no
// wildcarding and no group membership.
func (s *Auther) IsAdmin(email string) bool {
	if email == "" || s.adminEmail == "" {
		return false
	}
	return strings.EqualFold(email, s.adminEmail)
}
