package store

import (
	"context"
	"time"

	"github.com/irisalmeida/registra-ai/internal/ledger"
	"github.com/irisalmeida/registra-ai/internal/models"
	"github.com/irisalmeida/registra-ai/internal/money"

	"gorm.io/gorm"
)

// Records is the gorm-backed ledger.RecordStore.
type Records struct {
	DB *gorm.DB
}

func NewRecords(db *gorm.DB) *Records {
	return &Records{DB: db}
}

// Insert persists a new record as a single durable write and returns it
// with the assigned id.
func (r *Records) Insert(ctx context.Context, userID string, amount money.Amount, description string, createdAt time.Time) (*models.Record, error) {
	rec := models.Record{
		UserID:      userID,
		Amount:      amount,
		Description: description,
		CreatedAt:   createdAt,
	}
	if err := r.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, ledger.WrapStorage("insert record", err)
	}
	return &rec, nil
}

// ListByUser returns all records of a user in creation order, oldest first.
// A user without records gets an empty slice.
func (r *Records) ListByUser(ctx context.Context, userID string) ([]models.Record, error) {
	records := make([]models.Record, 0)
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, ledger.WrapStorage("list records", err)
	}
	return records, nil
}
