package models

import (
	"time"

	"github.com/irisalmeida/registra-ai/internal/money"
)

// Record is a single ledger entry. The sign of Amount is the gain/expense
// classification: gains are stored positive, expenses negative. Records are
// append-only; there is no update or delete path.
type Record struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      string       `gorm:"index;size:64;not null" json:"user_id"`
	Amount      money.Amount `gorm:"type:numeric(20,6);not null" json:"amount"`
	Description string       `gorm:"size:255;not null" json:"description"`
	CreatedAt   time.Time    `gorm:"index" json:"created_at"`
}
