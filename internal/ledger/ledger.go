package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/irisalmeida/registra-ai/internal/models"
	"github.com/irisalmeida/registra-ai/internal/money"
)

// RecordStore is the durable, append-only home of ledger entries. Insert
// persists a single record atomically; ListByUser returns a user's records
// oldest first, and an empty slice (never nil semantics) when there are none.
type RecordStore interface {
	Insert(ctx context.Context, userID string, amount money.Amount, description string, createdAt time.Time) (*models.Record, error)
	ListByUser(ctx context.Context, userID string) ([]models.Record, error)
}

// UserStore is the persistence behind the user directory. Get returns
// ErrUserNotFound when the id is unknown; Create returns ErrConflict when
// the id already exists.
type UserStore interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// Service is the accounting core: it owns the gain/expense sign convention
// and derives the balance from the record set. It keeps no state of its own,
// so one instance is safe for any number of concurrent requests.
type Service struct {
	records RecordStore
	users   UserStore
	now     func() time.Time
}

// NewService wires the service to its stores.
func NewService(records RecordStore, users UserStore) *Service {
	return &Service{records: records, users: users, now: time.Now}
}

// RegisterGain appends a positive record for the user.
func (s *Service) RegisterGain(ctx context.Context, userID string, amount money.Amount, description string) (*models.Record, error) {
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	return s.register(ctx, userID, amount, description)
}

// RegisterExpense appends a negative record for the user. The sign flip
// happens here and nowhere else: a stored record's sign is the single
// source of truth for gain vs expense.
func (s *Service) RegisterExpense(ctx context.Context, userID string, amount money.Amount, description string) (*models.Record, error) {
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	return s.register(ctx, userID, amount.Neg(), description)
}

func (s *Service) register(ctx context.Context, userID string, amount money.Amount, description string) (*models.Record, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrInvalidDescription
	}
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.records.Insert(ctx, userID, amount, description, s.now())
}

// Balance returns the unrounded sum of the user's record amounts. Handlers
// round to two decimals at the presentation boundary. Unknown users get
// ErrUserNotFound, not a zero balance.
func (s *Service) Balance(ctx context.Context, userID string) (money.Amount, error) {
	records, err := s.History(ctx, userID)
	if err != nil {
		return money.Zero(), err
	}
	balance := money.Zero()
	for _, rec := range records {
		balance = balance.Add(rec.Amount)
	}
	return balance, nil
}

// History returns the user's records in creation order, oldest first.
func (s *Service) History(ctx context.Context, userID string) ([]models.Record, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.records.ListByUser(ctx, userID)
}
