package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auth "github.com/SyncForMe/observer-auth"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := auth.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, auth.DefaultSigningSecret, cfg.GetSigningKey())
	assert.Equal(t, auth.DefaultAdminEmail, cfg.GetAdminEmail())
	assert.Equal(t, "mongodb://localhost:27017", cfg.GetMongoURL())
	assert.Equal(t, "observer", cfg.GetDatabaseName())
	assert.Equal(t, "HS256", cfg.GetSigningMethod())
	assert.Equal(t, "user", cfg.GetContextKey())
	assert.Equal(t, "header:Authorization", cfg.GetTokenLookup())
	assert.Equal(t, "Bearer", cfg.GetAuthScheme())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("ADMIN_EMAIL", "ops@cytonic.com")
	t.Setenv("MONGODB_URL", "mongodb://db.internal:27017")
	t.Setenv("DATABASE_NAME", "observer_prod")

	cfg, err := auth.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod-secret", cfg.GetSigningKey())
	assert.Equal(t, "ops@cytonic.com", cfg.GetAdminEmail())
	assert.Equal(t, "mongodb://db.internal:27017", cfg.GetMongoURL())
	assert.Equal(t, "observer_prod", cfg.GetDatabaseName())
}

func TestLoadConfig_RejectsBadAdminEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "not-an-email")

	cfg, err := auth.LoadConfig()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestEnvConfig_Validate(t *testing.T) {
	valid := &auth.EnvConfig{
		SigningSecret: "secret",
		AdminEmail:    "dino@cytonic.com",
		MongoURL:      "mongodb://localhost:27017",
		DatabaseName:  "observer",
	}
	assert.NoError(t, valid.Validate())

	missingSecret := *valid
	missingSecret.SigningSecret = ""
	assert.Error(t, missingSecret.Validate())

	missingDB := *valid
	missingDB.DatabaseName = ""
	assert.Error(t, missingDB.Validate())
}
