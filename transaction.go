package fintrack

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrack/date"
)

// Reserved transaction categories. User expenditures carry free-form
// categories; these are synthesized by the system.
const (
	CategoryTransfer = "Fund Transfer"
	CategoryDeposit  = "Deposit"
	CategoryBonds    = "Bonds"
	CategoryCard     = "Credit Card"
)

// Transaction records a single deposit or expenditure. A transaction is
// never mutated in place once recorded: edits replace fields through the
// owning account's edit operations.
type Transaction struct {
	Description string
	Amount      Money
	Date        date.Date
	Category    string
	Spent       bool // true for expenditures, false for deposits

	// Card-originated spend carries the owning card's id and the date of
	// the bill it belongs to. Blank otherwise.
	CardID   string
	BillDate date.Date
}

// NewExpenditure returns a spent transaction.
func NewExpenditure(description string, amount Money, on date.Date, category string) Transaction {
	return Transaction{Description: description, Amount: amount, Date: on, Category: category, Spent: true}
}

// NewDeposit returns an unspent transaction.
func NewDeposit(description string, amount Money, on date.Date, category string) Transaction {
	return Transaction{Description: description, Amount: amount, Date: on, Category: category}
}

// NewCardExpenditure returns a spent transaction linked to a card bill.
func NewCardExpenditure(description string, amount Money, on date.Date, category, cardID string, bill date.Date) Transaction {
	return Transaction{
		Description: description,
		Amount:      amount,
		Date:        on,
		Category:    category,
		Spent:       true,
		CardID:      cardID,
		BillDate:    bill,
	}
}

// Validate checks the fields every recorded transaction must have.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: transaction description must not be empty", ErrInvalidArgument)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: transaction amount must be positive", ErrInvalidArgument)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction date is missing", ErrInvalidArgument)
	}
	return nil
}

// Matches reports whether the transaction matches the given keyword search.
// Blank keywords match everything; the date range is inclusive.
func (t Transaction) Matches(r date.Range, description, category string) bool {
	if !r.Contains(t.Date) {
		return false
	}
	if description != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(description)) {
		return false
	}
	if category != "" && !strings.EqualFold(t.Category, category) {
		return false
	}
	return true
}

func (t Transaction) String() string {
	kind := "deposit"
	if t.Spent {
		kind = "expenditure"
	}
	return fmt.Sprintf("%s %s %s on %s [%s]", kind, t.Description, t.Amount, t.Date, t.Category)
}
