package store

import (
	"context"
	"errors"

	"github.com/irisalmeida/registra-ai/internal/ledger"
	"github.com/irisalmeida/registra-ai/internal/models"

	"gorm.io/gorm"
)

// Users is the gorm-backed ledger.UserStore.
type Users struct {
	DB *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{DB: db}
}

// Get fetches a user by id. ledger.ErrUserNotFound when no row matches.
func (u *Users) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := u.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrUserNotFound
		}
		return nil, ledger.WrapStorage("get user", err)
	}
	return &user, nil
}

// Create inserts a new user row. The primary key on the external id is the
// uniqueness constraint that settles concurrent first logins; a duplicate
// insert surfaces as ledger.ErrConflict.
func (u *Users) Create(ctx context.Context, user *models.User) error {
	err := u.DB.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ledger.ErrConflict
		}
		return ledger.WrapStorage("create user", err)
	}
	return nil
}
