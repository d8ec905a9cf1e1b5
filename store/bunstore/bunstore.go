// Package bunstore adapts a SQL users table to the auth.UserStore contract
// for embedded and test deployments where MongoDB is not available.
package bunstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"

	auth "github.com/SyncForMe/observer-auth"
)

// UserRecord is the persisted user row.
type UserRecord struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID         string    `bun:"id,pk" json:"id"`
	Email      string    `bun:"email,notnull,unique" json:"email"`
	Name       string    `bun:"name" json:"name,omitempty"`
	Picture    string    `bun:"picture" json:"picture,omitempty"`
	ExternalID string    `bun:"external_id" json:"external_id,omitempty"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	LastLogin  time.Time `bun:"last_login,nullzero" json:"last_login,omitempty"`
	IsActive   bool      `bun:"is_active" json:"is_active"`
}

// Principal maps the row to the request-facing descriptor.
func (r *UserRecord) Principal() *auth.Principal {
	return &auth.Principal{
		ID:         r.ID,
		Email:      r.Email,
		Name:       r.Name,
		Picture:    r.Picture,
		ExternalID: r.ExternalID,
		CreatedAt:  r.CreatedAt,
		LastLogin:  r.LastLogin,
		IsActive:   r.IsActive,
	}
}

// Store is a read-only lookup over the users table.
type Store struct {
	db *bun.DB
}

var _ auth.UserStore = (*Store)(nil)

// New returns a store over db. The connection is shared and owned by the
// caller.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// FindByID looks a user up by primary key.
func (s *Store) FindByID(ctx context.Context, id string) (*auth.Principal, error) {
	return s.findOne(ctx, "id", id)
}

// FindByEmail looks a user up by exact email. SQL equality on the email
// column is case-sensitive, matching the adapter contract.
func (s *Store) FindByEmail(ctx context.Context, email string) (*auth.Principal, error) {
	return s.findOne(ctx, "email", email)
}

func (s *Store) findOne(ctx context.Context, column, value string) (*auth.Principal, error) {
	record := &UserRecord{}

	err := s.db.NewSelect().
		Model(record).
		Where("?TableAlias."+column+" = ?", value).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserRecordNotFound
		}
		return nil, err
	}

	return record.Principal(), nil
}

// CreateSchema creates the users table. Embedded deployments call this once
// at startup; production schemas are managed elsewhere.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*UserRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}
