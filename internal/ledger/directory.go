package ledger

import (
	"context"
	"errors"

	"github.com/irisalmeida/registra-ai/internal/models"
)

// Directory resolves external identities (OAuth subject ids) to users.
// It never authenticates anyone; the gateway hands it an already-verified id.
type Directory struct {
	users UserStore
}

// NewDirectory wires the directory to its store.
func NewDirectory(users UserStore) *Directory {
	return &Directory{users: users}
}

// Get looks up a user by id. ErrUserNotFound when absent.
func (d *Directory) Get(ctx context.Context, id string) (*models.User, error) {
	return d.users.Get(ctx, id)
}

// GetOrCreate returns the existing user for id, or creates one with the
// given profile fields. An existing profile is returned unchanged: repeated
// logins never overwrite name, email or picture (first write wins).
//
// Concurrent first logins of the same id are settled by the storage
// uniqueness constraint: whoever loses the insert race re-fetches the row
// the winner created, so at most one user exists per id.
func (d *Directory) GetOrCreate(ctx context.Context, id, name, email, profilePic string) (*models.User, error) {
	user, err := d.users.Get(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user = &models.User{ID: id, Name: name, Email: email, ProfilePic: profilePic}
	err = d.users.Create(ctx, user)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, ErrConflict) {
		// lost the race, the row exists now
		return d.users.Get(ctx, id)
	}
	return nil, err
}
