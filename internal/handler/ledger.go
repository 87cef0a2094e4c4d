package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/irisalmeida/registra-ai/internal/ledger"
	"github.com/irisalmeida/registra-ai/internal/money"
	"github.com/irisalmeida/registra-ai/internal/util"

	"github.com/gin-gonic/gin"
)

// LedgerHandler exposes the accounting endpoints. All business rules live in
// the service; this layer only binds requests and translates errors into
// the HTTP envelope.
type LedgerHandler struct {
	Service *ledger.Service
}

func NewLedgerHandler(svc *ledger.Service) *LedgerHandler {
	return &LedgerHandler{Service: svc}
}

// ---------- request binding ----------

// bindRegister pulls amount and description out of the body, reporting
// missing fields and non-numeric amounts with field-level detail.
func bindRegister(c *gin.Context) (money.Amount, string, bool) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid_request_body")
		return money.Zero(), "", false
	}

	var missing []string
	amountRaw, hasAmount := raw["amount"]
	if !hasAmount {
		missing = append(missing, "amount")
	}
	descRaw, hasDesc := raw["description"]
	if !hasDesc {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		util.ErrorWithInfo(c, http.StatusBadRequest, "missing_fields",
			util.AdditionalInfo{MissingFields: missing})
		return money.Zero(), "", false
	}

	var amount money.Amount
	if err := json.Unmarshal(amountRaw, &amount); err != nil {
		util.ErrorWithInfo(c, http.StatusBadRequest, "invalid_amount",
			util.AdditionalInfo{InvalidField: "amount"})
		return money.Zero(), "", false
	}

	var description string
	if err := json.Unmarshal(descRaw, &description); err != nil {
		util.ErrorWithInfo(c, http.StatusBadRequest, "invalid_description",
			util.AdditionalInfo{InvalidField: "description"})
		return money.Zero(), "", false
	}

	return amount, description, true
}

// writeLedgerError maps core errors onto status codes and stable reasons.
// Storage failures pass through as 500 so the client can resubmit.
func writeLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		util.ErrorWithInfo(c, http.StatusBadRequest, "invalid_amount",
			util.AdditionalInfo{InvalidField: "amount"})
	case errors.Is(err, ledger.ErrInvalidDescription):
		util.ErrorWithInfo(c, http.StatusBadRequest, "invalid_description",
			util.AdditionalInfo{InvalidField: "description"})
	case errors.Is(err, ledger.ErrUserNotFound):
		util.Error(c, http.StatusNotFound, "user_not_found")
	default:
		util.Error(c, http.StatusInternalServerError, "storage_failure")
	}
}

// ---------- endpoints ----------

// GetBalance returns the running balance of the caller.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	balance, err := h.Service.Balance(c.Request.Context(), user.ID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": fmt.Sprintf("Saldo atual: %s", balance.Display()),
		"balance": balance,
	})
}

// PostGain registers a money gain.
func (h *LedgerHandler) PostGain(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	amount, description, ok := bindRegister(c)
	if !ok {
		return
	}

	record, err := h.Service.RegisterGain(c.Request.Context(), user.ID, amount, description)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	balance, err := h.Service.Balance(c.Request.Context(), user.ID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": fmt.Sprintf("Ganho registrado! Agora você tem %s", balance.Display()),
		"record":  record,
		"balance": balance,
	})
}

// PostExpense registers a money expense. The amount arrives non-negative;
// the service stores it negated.
func (h *LedgerHandler) PostExpense(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	amount, description, ok := bindRegister(c)
	if !ok {
		return
	}

	record, err := h.Service.RegisterExpense(c.Request.Context(), user.ID, amount, description)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	balance, err := h.Service.Balance(c.Request.Context(), user.ID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": fmt.Sprintf("Gasto registrado! Agora você tem %s", balance.Display()),
		"record":  record,
		"balance": balance,
	})
}

// GetHistory returns all records of the caller, oldest first, with the
// running balance.
func (h *LedgerHandler) GetHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	history, err := h.Service.History(c.Request.Context(), user.ID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	balance := money.Zero()
	for _, rec := range history {
		balance = balance.Add(rec.Amount)
	}

	util.Success(c, util.Response{
		"history": history,
		"balance": balance,
	})
}
