package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to record a debt.
type CreateDebtRequest struct {
	Direction    string          `json:"direction" binding:"required,oneof=owe lent"`
	Counterparty string          `json:"counterparty" binding:"required"`
	AmountBase   decimal.Decimal `json:"amountBase" binding:"required"`
	ExchangeRate decimal.Decimal `json:"exchangeRate" binding:"required"`
	Purpose      string          `json:"purpose" binding:"required"`
	DueDate      *string         `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateDebtRequest defines the data allowed for updating a debt. Amounts are
// not updatable here; the remaining balance only moves through payments.
type UpdateDebtRequest struct {
	Counterparty *string `json:"counterparty"`
	Purpose      *string `json:"purpose"`
	DueDate      *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	ClearDueDate bool    `json:"clearDueDate"`
}

// ApplyPaymentRequest defines the data needed to apply a payment against a debt.
type ApplyPaymentRequest struct {
	AmountBase  decimal.Decimal `json:"amountBase" binding:"required"`
	PaymentDate string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Notes       string          `json:"notes"`
}

// DebtResponse defines the data returned for a debt, including the urgency
// classification derived from its due date at response time.
type DebtResponse struct {
	DebtID             string          `json:"debtID"`
	Direction          string          `json:"direction"`
	Counterparty       string          `json:"counterparty"`
	TotalBase          decimal.Decimal `json:"totalBase"`
	TotalSecondary     decimal.Decimal `json:"totalSecondary"`
	RemainingBase      decimal.Decimal `json:"remainingBase"`
	RemainingSecondary decimal.Decimal `json:"remainingSecondary"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"`
	Purpose            string          `json:"purpose"`
	DueDate            *string         `json:"dueDate,omitempty"`
	Paid               bool            `json:"paid"`
	Priority           string          `json:"priority"`
	CreatedAt          time.Time       `json:"createdAt"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
}

// ToDebtResponse converts a domain.Debt to DebtResponse DTO, classifying its
// priority as of now.
func ToDebtResponse(d *domain.Debt, now time.Time) DebtResponse {
	resp := DebtResponse{
		DebtID:             d.DebtID,
		Direction:          string(d.Direction),
		Counterparty:       d.Counterparty,
		TotalBase:          d.TotalBase,
		TotalSecondary:     d.TotalSecondary,
		RemainingBase:      d.RemainingBase,
		RemainingSecondary: d.RemainingSecondary,
		ExchangeRate:       d.ExchangeRate,
		Purpose:            d.Purpose,
		Paid:               d.Paid,
		Priority:           string(d.PriorityOn(now)),
		CreatedAt:          d.CreatedAt,
		LastUpdatedAt:      d.LastUpdatedAt,
	}
	if d.DueDate != nil {
		due := d.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

// ToListDebtResponse converts a slice of domain.Debt to response DTOs
func ToListDebtResponse(debts []domain.Debt, now time.Time) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i, d := range debts {
		res[i] = ToDebtResponse(&d, now)
	}
	return res
}

// DebtPaymentResponse defines the data returned for a debt payment.
type DebtPaymentResponse struct {
	PaymentID       string          `json:"paymentID"`
	DebtID          string          `json:"debtID"`
	AmountBase      decimal.Decimal `json:"amountBase"`
	AmountSecondary decimal.Decimal `json:"amountSecondary"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	PaymentDate     string          `json:"paymentDate"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToDebtPaymentResponse converts a domain.DebtPayment to DebtPaymentResponse DTO
func ToDebtPaymentResponse(p *domain.DebtPayment) DebtPaymentResponse {
	return DebtPaymentResponse{
		PaymentID:       p.PaymentID,
		DebtID:          p.DebtID,
		AmountBase:      p.AmountBase,
		AmountSecondary: p.AmountSecondary,
		ExchangeRate:    p.ExchangeRate,
		PaymentDate:     p.PaymentDate.Format("2006-01-02"),
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
	}
}

// ToListDebtPaymentResponse converts a slice of domain.DebtPayment to response DTOs
func ToListDebtPaymentResponse(payments []domain.DebtPayment) []DebtPaymentResponse {
	res := make([]DebtPaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToDebtPaymentResponse(&p)
	}
	return res
}

// ApplyPaymentResponse bundles the mutated debt and the new payment record so
// the caller can merge both into its view state.
type ApplyPaymentResponse struct {
	Debt    DebtResponse        `json:"debt"`
	Payment DebtPaymentResponse `json:"payment"`
}
