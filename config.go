package auth

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-errors"
	"github.com/kelseyhightower/envconfig"
)

// DefaultSigningSecret is the development fallback used when JWT_SECRET is
// unset. It is insecure by construction; deployments must override it.
const DefaultSigningSecret = "your-secret-key-here"

// DefaultAdminEmail is the designated administrator address. Admin access
// follows the configured address, not a token claim, so demoting an admin
// is a config change rather than a token revocation.
const DefaultAdminEmail = "dino@cytonic.com"

// EnvConfig is the process-wide auth configuration. It is loaded once at
// startup and read-only afterwards.
type EnvConfig struct {
	SigningSecret string `envconfig:"JWT_SECRET" default:"your-secret-key-here"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"dino@cytonic.com"`
	MongoURL      string `envconfig:"MONGODB_URL" default:"mongodb://localhost:27017"`
	DatabaseName  string `envconfig:"DATABASE_NAME" default:"observer"`
	ContextKey    string `envconfig:"AUTH_CONTEXT_KEY" default:"user"`
	TokenLookup   string `envconfig:"AUTH_TOKEN_LOOKUP" default:"header:Authorization"`
	AuthScheme    string `envconfig:"AUTH_SCHEME" default:"Bearer"`
}

// LoadConfig reads the auth configuration from the environment and
// validates it.
func LoadConfig() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load auth configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "invalid auth configuration")
	}

	return cfg, nil
}

func (c *EnvConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SigningSecret, validation.Required),
		validation.Field(&c.AdminEmail, validation.Required, is.Email),
		validation.Field(&c.MongoURL, validation.Required),
		validation.Field(&c.DatabaseName, validation.Required),
	)
}

var _ Config = (*EnvConfig)(nil)

func (c *EnvConfig) GetSigningKey() string { return c.SigningSecret }

// GetSigningMethod is fixed: the backend issues HS256 and nothing else.
func (c *EnvConfig) GetSigningMethod() string { return "HS256" }

func (c *EnvConfig) GetAdminEmail() string { return c.AdminEmail }

func (c *EnvConfig) GetContextKey() string { return c.ContextKey }

func (c *EnvConfig) GetTokenLookup() string { return c.TokenLookup }

func (c *EnvConfig) GetAuthScheme() string { return c.AuthScheme }

// GetMongoURL returns the user store connection string.
func (c *EnvConfig) GetMongoURL() string { return c.MongoURL }

// GetDatabaseName returns the logical database within the connection.
func (c *EnvConfig) GetDatabaseName() string { return c.DatabaseName }
