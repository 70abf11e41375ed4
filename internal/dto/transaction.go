package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Date is a calendar date; the exchange rate is captured as submitted and the
// secondary amount is derived from it exactly once, at write time.
type CreateTransactionRequest struct {
	Kind         string          `json:"kind" binding:"required,oneof=income expense"`
	Category     string          `json:"category" binding:"required,txncategory"`
	AmountBase   decimal.Decimal `json:"amountBase" binding:"required"`
	ExchangeRate decimal.Decimal `json:"exchangeRate" binding:"required"`
	Description  string          `json:"description"`
	Date         string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Pointers distinguish omitted fields from zero values.
type UpdateTransactionRequest struct {
	Category     *string          `json:"category"`
	AmountBase   *decimal.Decimal `json:"amountBase"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
	Description  *string          `json:"description"`
	Date         *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Kind     string `form:"kind" binding:"omitempty,oneof=income expense"`
	Category string `form:"category"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Kind            string          `json:"kind"`
	Category        string          `json:"category"`
	AmountBase      decimal.Decimal `json:"amountBase"`
	AmountSecondary decimal.Decimal `json:"amountSecondary"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	Description     string          `json:"description"`
	Date            string          `json:"date"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Kind:            string(t.Kind),
		Category:        t.Category,
		AmountBase:      t.AmountBase,
		AmountSecondary: t.AmountSecondary,
		ExchangeRate:    t.ExchangeRate,
		Description:     t.Description,
		Date:            t.Date.Format("2006-01-02"),
		CreatedAt:       t.CreatedAt,
		LastUpdatedAt:   t.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}
