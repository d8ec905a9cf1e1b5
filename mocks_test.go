package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	auth "github.com/SyncForMe/observer-auth"
)

// MockUserStore implements auth.UserStore for testing. Calling a method
// without a registered expectation panics, which doubles as the assertion
// that a pipeline stage never reached the store.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (*auth.Principal, error) {
	args := m.Called(ctx, id)
	var user *auth.Principal
	if v := args.Get(0); v != nil {
		user = v.(*auth.Principal)
	}
	return user, args.Error(1)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*auth.Principal, error) {
	args := m.Called(ctx, email)
	var user *auth.Principal
	if v := args.Get(0); v != nil {
		user = v.(*auth.Principal)
	}
	return user, args.Error(1)
}

// testConfig implements auth.Config with sane test defaults.
type testConfig struct {
	secret string
	admin  string
}

func (c testConfig) GetSigningKey() string {
	if c.secret == "" {
		return "test-signing-secret"
	}
	return c.secret
}

func (c testConfig) GetSigningMethod() string { return "HS256" }

func (c testConfig) GetAdminEmail() string {
	if c.admin == "" {
		return auth.DefaultAdminEmail
	}
	return c.admin
}

func (c testConfig) GetContextKey() string { return "user" }

func (c testConfig) GetTokenLookup() string { return "header:Authorization" }

func (c testConfig) GetAuthScheme() string { return "Bearer" }
