package mapping

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/models"
)

// ToModelDebt converts a domain Debt to a model Debt
func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:             d.DebtID,
		UserID:             d.UserID,
		Direction:          string(d.Direction),
		Counterparty:       d.Counterparty,
		TotalBase:          d.TotalBase,
		TotalSecondary:     d.TotalSecondary,
		RemainingBase:      d.RemainingBase,
		RemainingSecondary: d.RemainingSecondary,
		ExchangeRate:       d.ExchangeRate,
		Purpose:            d.Purpose,
		DueDate:            d.DueDate,
		Paid:               d.Paid,
		PriorityScore:      d.PriorityScore,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebt converts a model Debt to a domain Debt
func ToDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:             m.DebtID,
		UserID:             m.UserID,
		Direction:          domain.DebtDirection(m.Direction),
		Counterparty:       m.Counterparty,
		TotalBase:          m.TotalBase,
		TotalSecondary:     m.TotalSecondary,
		RemainingBase:      m.RemainingBase,
		RemainingSecondary: m.RemainingSecondary,
		ExchangeRate:       m.ExchangeRate,
		Purpose:            m.Purpose,
		DueDate:            m.DueDate,
		Paid:               m.Paid,
		PriorityScore:      m.PriorityScore,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDebtSlice converts a slice of model Debts to domain Debts
func ToDomainDebtSlice(ms []models.Debt) []domain.Debt {
	ds := make([]domain.Debt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}

// ToModelDebtPayment converts a domain DebtPayment to a model DebtPayment
func ToModelDebtPayment(d domain.DebtPayment) models.DebtPayment {
	return models.DebtPayment{
		PaymentID:       d.PaymentID,
		DebtID:          d.DebtID,
		UserID:          d.UserID,
		AmountBase:      d.AmountBase,
		AmountSecondary: d.AmountSecondary,
		ExchangeRate:    d.ExchangeRate,
		PaymentDate:     d.PaymentDate,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainDebtPayment converts a model DebtPayment to a domain DebtPayment
func ToDomainDebtPayment(m models.DebtPayment) domain.DebtPayment {
	return domain.DebtPayment{
		PaymentID:       m.PaymentID,
		DebtID:          m.DebtID,
		UserID:          m.UserID,
		AmountBase:      m.AmountBase,
		AmountSecondary: m.AmountSecondary,
		ExchangeRate:    m.ExchangeRate,
		PaymentDate:     m.PaymentDate,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainDebtPaymentSlice converts a slice of model DebtPayments to domain DebtPayments
func ToDomainDebtPaymentSlice(ms []models.DebtPayment) []domain.DebtPayment {
	ds := make([]domain.DebtPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebtPayment(m)
	}
	return ds
}
