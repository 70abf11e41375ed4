package mapping

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		Kind:            string(d.Kind),
		Category:        d.Category,
		AmountBase:      d.AmountBase,
		AmountSecondary: d.AmountSecondary,
		ExchangeRate:    d.ExchangeRate,
		Description:     d.Description,
		Date:            d.Date,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		Kind:            domain.TransactionKind(m.Kind),
		Category:        m.Category,
		AmountBase:      m.AmountBase,
		AmountSecondary: m.AmountSecondary,
		ExchangeRate:    m.ExchangeRate,
		Description:     m.Description,
		Date:            m.Date,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
