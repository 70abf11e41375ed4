package dto

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs custom validators on gin's binding
// engine. Call once at startup, before routes are served.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txncategory", validTransactionCategory)
	}
}

// validTransactionCategory accepts any category from the fixed income or
// expense sets. The kind-specific pairing is enforced in the service layer,
// where the kind field is available.
func validTransactionCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	return domain.ValidCategory(domain.Income, category) || domain.ValidCategory(domain.Expense, category)
}
