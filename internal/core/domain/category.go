package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
)

// Category defines the fundamental accounting type of an account.
type Category string

const (
	Asset     Category = "ASSET"
	Liability Category = "LIABILITY"
	Equity    Category = "EQUITY"
	Income    Category = "INCOME"
	Expenses  Category = "EXPENSES"
)

// Categories lists every valid category.
func Categories() []Category {
	return []Category{Asset, Liability, Equity, Income, Expenses}
}

// DebitCategories lists the categories whose accounts grow on the debit side.
func DebitCategories() []Category {
	return []Category{Asset, Expenses}
}

// CreditCategories lists the categories whose accounts grow on the credit side.
func CreditCategories() []Category {
	return []Category{Liability, Equity, Income}
}

// ParseCategory parses the string form of a category, ignoring surrounding
// whitespace and letter case.
func ParseCategory(raw string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(raw))) {
	case Asset:
		return Asset, nil
	case Liability:
		return Liability, nil
	case Equity:
		return Equity, nil
	case Income:
		return Income, nil
	case Expenses:
		return Expenses, nil
	default:
		return "", fmt.Errorf("%w: unknown account category %q", apperrors.ErrValidation, raw)
	}
}

// IsValid reports whether c is one of the five known categories.
func (c Category) IsValid() bool {
	switch c {
	case Asset, Liability, Equity, Income, Expenses:
		return true
	}
	return false
}

// IsDebitNormal reports whether accounts of this category increase on debit.
// Asset and Expenses accounts do; Liability, Equity and Income accounts
// increase on credit.
func (c Category) IsDebitNormal() bool {
	return c == Asset || c == Expenses
}

// Increase builds the leg amount that grows an account of this category.
// It is a convenience for callers composing entries; the balance validation
// itself never consults the category.
func (c Category) Increase(amount uint32) (Balance, error) {
	if !c.IsValid() {
		return Balance{}, fmt.Errorf("%w: unknown account category %q", apperrors.ErrValidation, string(c))
	}
	if c.IsDebitNormal() {
		return NewDebit(amount)
	}
	return NewCredit(amount)
}

func (c Category) String() string {
	return string(c)
}
