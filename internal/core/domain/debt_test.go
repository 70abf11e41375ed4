package domain_test

import (
	"testing"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPriorityOn(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	due := func(days int) *time.Time {
		d := today.AddDate(0, 0, days)
		return &d
	}

	tests := []struct {
		name     string
		dueDate  *time.Time
		expected domain.DebtPriority
	}{
		{"no due date", nil, domain.PriorityLow},
		{"due yesterday", due(-1), domain.PriorityOverdue},
		{"due long ago", due(-45), domain.PriorityOverdue},
		{"due today", due(0), domain.PriorityUrgent},
		{"due in a week", due(7), domain.PriorityUrgent},
		{"due in eight days", due(8), domain.PriorityMedium},
		{"due in thirty days", due(30), domain.PriorityMedium},
		{"due in thirty-one days", due(31), domain.PriorityLow},
		{"due next year", due(365), domain.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.Debt{DueDate: tt.dueDate}
			assert.Equal(t, tt.expected, d.PriorityOn(today))
		})
	}
}

func TestPriorityOnPartialDays(t *testing.T) {
	// 12 hours from now rounds up to one full day, so the debt is urgent,
	// not overdue.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	d := domain.Debt{DueDate: &dueDate}
	assert.Equal(t, domain.PriorityUrgent, d.PriorityOn(now))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, domain.ValidCategory(domain.Income, "salary"))
	assert.True(t, domain.ValidCategory(domain.Expense, "food"))
	assert.False(t, domain.ValidCategory(domain.Income, "food"))
	assert.False(t, domain.ValidCategory(domain.Expense, "salary"))
	assert.False(t, domain.ValidCategory(domain.Income, "unknown"))
	assert.False(t, domain.ValidCategory(domain.TransactionKind("transfer"), "salary"))
}

func TestMonthKey(t *testing.T) {
	txn := domain.Transaction{Date: time.Date(2026, 3, 7, 15, 30, 0, 0, time.UTC)}
	assert.Equal(t, "2026-03", txn.MonthKey())

	txn.Date = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-12", txn.MonthKey())
}
