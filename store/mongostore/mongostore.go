// Package mongostore adapts the Observer users collection to the
// auth.UserStore contract. It is strictly read-only: the auth core never
// writes users.
package mongostore

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	auth "github.com/SyncForMe/observer-auth"
)

const usersCollection = "users"

// Store is a read-only lookup over the users collection. Safe for
// concurrent use; connection pooling is the driver's concern.
type Store struct {
	users *mongo.Collection
}

var _ auth.UserStore = (*Store)(nil)

// New returns a store bound to the users collection of db.
func New(db *mongo.Database) *Store {
	return &Store{users: db.Collection(usersCollection)}
}

// Connect dials MongoDB, verifies the connection, and returns a store over
// the named database. The returned client is owned by the caller and must
// be disconnected on shutdown.
func Connect(ctx context.Context, uri, database string) (*Store, *mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.CategoryInternal, "failed to connect to user store")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, errors.Wrap(err, errors.CategoryInternal, "user store did not answer ping")
	}

	return New(client.Database(database)), client, nil
}

// FindByID looks a user up by its opaque id.
func (s *Store) FindByID(ctx context.Context, id string) (*auth.Principal, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail looks a user up by exact email. Comparison is case-sensitive
// at this boundary; stored emails are expected lowercased at write time.
func (s *Store) FindByEmail(ctx context.Context, email string) (*auth.Principal, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *Store) findOne(ctx context.Context, filter bson.M) (*auth.Principal, error) {
	doc := userDocument{}
	if err := s.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrUserRecordNotFound
		}
		return nil, err
	}
	return doc.principal(), nil
}

// userDocument mirrors the persisted user shape. Optional fields are
// pointers or omitempty so historic records missing them still decode; the
// mapping to auth.Principal fills defaults.
type userDocument struct {
	ID         string     `bson:"_id"`
	Email      string     `bson:"email"`
	Name       string     `bson:"name,omitempty"`
	Picture    string     `bson:"picture,omitempty"`
	ExternalID string     `bson:"external_id,omitempty"`
	CreatedAt  *time.Time `bson:"created_at,omitempty"`
	LastLogin  *time.Time `bson:"last_login,omitempty"`
	IsActive   *bool      `bson:"is_active,omitempty"`
}

func (d userDocument) principal() *auth.Principal {
	// Records written before the is_active flag existed count as active.
	active := true
	if d.IsActive != nil {
		active = *d.IsActive
	}

	p := &auth.Principal{
		ID:         d.ID,
		Email:      d.Email,
		Name:       d.Name,
		Picture:    d.Picture,
		ExternalID: d.ExternalID,
		IsActive:   active,
	}

	if d.CreatedAt != nil {
		p.CreatedAt = *d.CreatedAt
	}
	if d.LastLogin != nil {
		p.LastLogin = *d.LastLogin
	}

	return p
}
