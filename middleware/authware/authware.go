// Package authware provides the fiber middleware forms of the auth
// pipeline: a required form that aborts unauthenticated requests and an
// optional form that lets them through without a principal.
package authware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	auth "github.com/SyncForMe/observer-auth"
)

var (
	defaultTokenLookup = "header:" + fiber.HeaderAuthorization

	// ErrMissingOrMalformed covers an absent authorization header, a
	// non-Bearer scheme, and an empty token.
	ErrMissingOrMalformed = errors.New("missing or malformed bearer credential")
)

type Config struct {
	// Filter defines a function to skip the middleware entirely.
	Filter func(*fiber.Ctx) bool

	// SuccessHandler runs after the principal has been attached. Defaults
	// to passing control to the next handler.
	SuccessHandler fiber.Handler

	// ErrorHandler maps pipeline failures to responses. The default sends
	// 401 with a short reason for authentication-kind failures and 500 for
	// store outages.
	ErrorHandler fiber.ErrorHandler

	// Authenticator is required; it runs validate + resolve per request.
	Authenticator auth.Authenticator

	// ContextKey is the fiber locals key the principal is stored under.
	// Defaults to "user".
	ContextKey string

	// TokenLookup is a comma separated list of "<source>:<name>" entries,
	// e.g. "header:Authorization,query:token,cookie:token".
	TokenLookup string

	// AuthScheme expected in the authorization header. Defaults to "Bearer".
	AuthScheme string

	// Optional swallows authentication-kind failures: the handler runs with
	// no principal attached. Store outages still abort the request; absence
	// of a user must not be conflated with inability to look one up.
	Optional bool
}

// New returns a middleware that resolves the bearer credential to a
// principal before the handler body executes. The principal is stored in
// fiber locals under ContextKey and in the request context for
// auth.FromContext.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)
	extractors := buildExtractors(cfg.TokenLookup, cfg.AuthScheme)

	return func(c *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		raw, err := extractToken(c, extractors)
		if err != nil {
			return cfg.handleFailure(c, err)
		}

		user, err := cfg.Authenticator.Authenticate(c.UserContext(), raw)
		if err != nil {
			return cfg.handleFailure(c, err)
		}

		c.Locals(cfg.ContextKey, user)
		c.SetUserContext(auth.WithContext(c.UserContext(), user))

		return cfg.SuccessHandler(c)
	}
}

// Principal returns the principal attached by New, if any. The boolean is
// false on routes behind the optional form when authentication failed.
func Principal(c *fiber.Ctx, key ...string) (*auth.Principal, bool) {
	contextKey := "user"
	if len(key) > 0 && key[0] != "" {
		contextKey = key[0]
	}
	user, ok := c.Locals(contextKey).(*auth.Principal)
	return user, ok && user != nil
}

// AdminOnly rejects principals other than the configured administrator.
// Mount it after New; requests with no principal are rejected too.
func AdminOnly(authenticator auth.Authenticator, key ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := Principal(c, key...)
		if !ok || !authenticator.IsAdmin(user.Email) {
			return c.Status(fiber.StatusForbidden).SendString("Admin access required")
		}
		return c.Next()
	}
}

func (cfg Config) handleFailure(c *fiber.Ctx, err error) error {
	if cfg.Optional && isAuthFailure(err) {
		// No distinction between "no credential" and "bad credential"; the
		// handler simply sees no principal.
		return c.Next()
	}
	return cfg.ErrorHandler(c, err)
}

// isAuthFailure bounds what the optional form may absorb.
func isAuthFailure(err error) bool {
	return errors.Is(err, ErrMissingOrMalformed) || auth.IsAuthError(err)
}

func defaultErrorHandler(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrMissingOrMalformed):
		return c.Status(fiber.StatusUnauthorized).SendString(ErrMissingOrMalformed.Error())
	case auth.IsUserNotFoundError(err):
		return c.Status(fiber.StatusUnauthorized).SendString("User not found")
	case auth.IsAuthError(err):
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid token: " + err.Error())
	default:
		return c.Status(fiber.StatusInternalServerError).SendString("Authentication backend unavailable")
	}
}

func configDefault(config ...Config) Config {
	var cfg Config
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Authenticator == nil {
		panic("AUTH: authware middleware configuration: Authenticator is required.")
	}

	if cfg.SuccessHandler == nil {
		cfg.SuccessHandler = func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = defaultErrorHandler
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = "user"
	}

	if cfg.TokenLookup == "" {
		cfg.TokenLookup = defaultTokenLookup
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	return cfg
}
