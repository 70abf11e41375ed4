package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DebtDirection says which side of the debt the owning user is on.
type DebtDirection string

const (
	Owe  DebtDirection = "owe"  // user is the debtor
	Lent DebtDirection = "lent" // user is the creditor
)

// DebtPriority classifies how urgently a debt needs attention, derived from
// its due date.
type DebtPriority string

const (
	PriorityLow     DebtPriority = "low"
	PriorityMedium  DebtPriority = "medium"
	PriorityUrgent  DebtPriority = "urgent"
	PriorityOverdue DebtPriority = "overdue"
)

// Debt represents money the user owes to, or has lent to, a counterparty.
// Remaining amounts satisfy 0 <= RemainingBase <= TotalBase, and Paid is true
// exactly when RemainingBase has reached zero.
type Debt struct {
	DebtID             string          `json:"debtID"`
	UserID             string          `json:"userID"`
	Direction          DebtDirection   `json:"direction"`
	Counterparty       string          `json:"counterparty"`
	TotalBase          decimal.Decimal `json:"totalBase"`
	TotalSecondary     decimal.Decimal `json:"totalSecondary"`
	RemainingBase      decimal.Decimal `json:"remainingBase"`
	RemainingSecondary decimal.Decimal `json:"remainingSecondary"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"`
	Purpose            string          `json:"purpose"`
	DueDate            *time.Time      `json:"dueDate,omitempty"`
	Paid               bool            `json:"paid"`
	PriorityScore      int             `json:"priorityScore"` // reserved, always 0
	AuditFields
}

// PriorityOn classifies the debt's urgency as of today. A debt without a due
// date is always low priority. The bands are inclusive on their lower bound:
// due in exactly 7 days is urgent, in exactly 30 days is medium.
func (d Debt) PriorityOn(today time.Time) DebtPriority {
	if d.DueDate == nil {
		return PriorityLow
	}
	daysUntilDue := int(math.Ceil(d.DueDate.Sub(today).Hours() / 24))
	switch {
	case daysUntilDue < 0:
		return PriorityOverdue
	case daysUntilDue <= 7:
		return PriorityUrgent
	case daysUntilDue <= 30:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// DebtPayment is an immutable, append-only record of a payment applied
// against a debt. It never mutates after creation.
type DebtPayment struct {
	PaymentID       string          `json:"paymentID"`
	DebtID          string          `json:"debtID"`
	UserID          string          `json:"userID"`
	AmountBase      decimal.Decimal `json:"amountBase"`
	AmountSecondary decimal.Decimal `json:"amountSecondary"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	PaymentDate     time.Time       `json:"paymentDate"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}
