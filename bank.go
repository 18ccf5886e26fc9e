package fintrack

import (
	"fmt"

	"github.com/etnz/fintrack/date"
)

// AccountType discriminates the two bank account variants.
type AccountType int

const (
	Saving AccountType = iota
	Investment
)

func (t AccountType) String() string {
	switch t {
	case Saving:
		return "saving"
	case Investment:
		return "investment"
	default:
		return "unknown"
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "saving":
		return Saving, nil
	case "investment":
		return Investment, nil
	default:
		return 0, fmt.Errorf("%w: unknown account type %q (want saving or investment)", ErrInvalidArgument, s)
	}
}

// Account is the closed interface over the two bank account variants.
// Operations a variant does not support return ErrInvalidAccountType,
// never a silent no-op.
type Account interface {
	Name() string
	Ref() string // stable identifier used in persistence file names
	Type() AccountType
	Balance() Money
	Rename(name string)
	SetBalance(amount Money)

	// Transaction operations, shared by both variants. Indexes are 1-based
	// over the full transaction list as presented to the user.
	AddExpenditure(tx Transaction) error
	AddDeposit(tx Transaction) error
	EditExpenditure(index int, edit TransactionEdit) error
	EditDeposit(index int, edit TransactionEdit) error
	DeleteExpenditure(index int) error
	DeleteDeposit(index int) error
	Transactions() []Transaction
	Expenditures(limit int) ([]Transaction, error)
	Deposits(limit int) ([]Transaction, error)
	FindTransactions(r date.Range, description, category string) ([]Transaction, error)

	// Savings-only operations.
	Income() Money
	NextIncomeDate() date.Date
	SetIncome(amount Money)
	AddRecurring(tx Transaction) error
	EditRecurring(index int, edit TransactionEdit) error
	DeleteRecurring(index int) error
	Recurring() ([]Transaction, error)

	// Investment-only operations.
	AddBond(b *Bond) error
	GetBond(name string) (*Bond, error)
	EditBond(name string, year int, rate *Rate) error
	DeleteBond(name string) error
	Bonds(limit int) ([]*Bond, error)
	FindBonds(keyword string) ([]*Bond, error)

	// Update applies every schedule that has come due (income, recurring
	// expenditures, bond interest and maturity) and returns one remark per
	// applied or skipped item.
	Update(now date.Date) []string

	setRef(ref string)
}

// TransactionEdit carries the replacement fields of an edit operation.
// Nil or blank fields keep the current value.
type TransactionEdit struct {
	Description string
	Amount      *Money
	Date        *date.Date
	Category    string
}

// account holds the state and behavior common to both variants, and the
// explicit rejections for capabilities a variant does not have. Savings
// and Investment embed it and override their own capability set.
type account struct {
	name         string
	ref          string
	balance      Money
	transactions []Transaction
}

func (a *account) Name() string           { return a.name }
func (a *account) Ref() string            { return a.ref }
func (a *account) Balance() Money         { return a.balance }
func (a *account) Rename(name string)     { a.name = name }
func (a *account) SetBalance(m Money)     { a.balance = m }
func (a *account) setRef(ref string)      { a.ref = ref }
func (a *account) Transactions() []Transaction {
	return a.transactions
}

// AddExpenditure debits the balance and appends the transaction. The
// append position determines display order; the list is never re-sorted.
func (a *account) AddExpenditure(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	rest := a.balance.Sub(tx.Amount)
	if rest.IsNegative() {
		return fmt.Errorf("%w: %s exceeds balance %s of %s", ErrInsufficientFunds, tx.Amount, a.balance, a.name)
	}
	a.balance = rest
	a.transactions = append(a.transactions, tx)
	return nil
}

// AddDeposit credits the balance unconditionally and appends the transaction.
func (a *account) AddDeposit(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	a.balance = a.balance.Add(tx.Amount)
	a.transactions = append(a.transactions, tx)
	return nil
}

// nth resolves a 1-based index over the expenditure or deposit view, the
// same numbering the listings present, into a position in the
// transaction list.
func (a *account) nth(spent bool, index int) (int, error) {
	if index >= 1 {
		seen := 0
		for pos, tx := range a.transactions {
			if tx.Spent != spent {
				continue
			}
			seen++
			if seen == index {
				return pos, nil
			}
		}
	}
	kind := "deposit"
	if spent {
		kind = "expenditure"
	}
	return 0, fmt.Errorf("%w: %s %d of %s", ErrIndexOutOfRange, kind, index, a.name)
}

func (a *account) EditExpenditure(index int, edit TransactionEdit) error {
	pos, err := a.nth(true, index)
	if err != nil {
		return err
	}
	tx := &a.transactions[pos]
	edited := applyEdit(*tx, edit)
	if err := edited.Validate(); err != nil {
		return err
	}
	// delta = new - old must not drive the balance negative.
	rest := a.balance.Add(tx.Amount).Sub(edited.Amount)
	if rest.IsNegative() {
		return fmt.Errorf("%w: editing transaction %d of %s to %s", ErrInsufficientFunds, index, a.name, edited.Amount)
	}
	a.balance = rest
	*tx = edited
	return nil
}

func (a *account) EditDeposit(index int, edit TransactionEdit) error {
	pos, err := a.nth(false, index)
	if err != nil {
		return err
	}
	tx := &a.transactions[pos]
	edited := applyEdit(*tx, edit)
	if err := edited.Validate(); err != nil {
		return err
	}
	rest := a.balance.Sub(tx.Amount).Add(edited.Amount)
	if rest.IsNegative() {
		return fmt.Errorf("%w: editing transaction %d of %s to %s", ErrInsufficientFunds, index, a.name, edited.Amount)
	}
	a.balance = rest
	*tx = edited
	return nil
}

// DeleteExpenditure removes the indexed expenditure and refunds its amount.
func (a *account) DeleteExpenditure(index int) error {
	pos, err := a.nth(true, index)
	if err != nil {
		return err
	}
	a.balance = a.balance.Add(a.transactions[pos].Amount)
	a.transactions = append(a.transactions[:pos], a.transactions[pos+1:]...)
	return nil
}

// DeleteDeposit removes the indexed deposit and deducts its amount, which
// must not drive the balance negative.
func (a *account) DeleteDeposit(index int) error {
	pos, err := a.nth(false, index)
	if err != nil {
		return err
	}
	rest := a.balance.Sub(a.transactions[pos].Amount)
	if rest.IsNegative() {
		return fmt.Errorf("%w: deleting deposit %d of %s", ErrInsufficientFunds, index, a.name)
	}
	a.balance = rest
	a.transactions = append(a.transactions[:pos], a.transactions[pos+1:]...)
	return nil
}

// Expenditures returns up to limit most recent expenditures (0 for all).
func (a *account) Expenditures(limit int) ([]Transaction, error) {
	return a.filter(true, limit)
}

// Deposits returns up to limit most recent deposits (0 for all).
func (a *account) Deposits(limit int) ([]Transaction, error) {
	return a.filter(false, limit)
}

func (a *account) filter(spent bool, limit int) ([]Transaction, error) {
	var out []Transaction
	for _, tx := range a.transactions {
		if tx.Spent == spent {
			out = append(out, tx)
		}
	}
	if len(out) == 0 {
		kind := "deposits"
		if spent {
			kind = "expenditures"
		}
		return nil, fmt.Errorf("%w: no %s in %s", ErrEmptyList, kind, a.name)
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (a *account) FindTransactions(r date.Range, description, category string) ([]Transaction, error) {
	var out []Transaction
	for _, tx := range a.transactions {
		if tx.Matches(r, description, category) {
			out = append(out, tx)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no transaction in %s matches the search", ErrNotFound, a.name)
	}
	return out, nil
}

// Explicit rejections. Each variant overrides the set it actually supports.

func (a *account) unsupported(op string) error {
	return fmt.Errorf("%w: %s is not supported by account %q", ErrInvalidAccountType, op, a.name)
}

func (a *account) Income() Money              { return Money{} }
func (a *account) NextIncomeDate() date.Date  { return date.Date{} }
func (a *account) SetIncome(Money)            {}
func (a *account) AddRecurring(Transaction) error {
	return a.unsupported("recurring expenditure")
}
func (a *account) EditRecurring(int, TransactionEdit) error {
	return a.unsupported("recurring expenditure")
}
func (a *account) DeleteRecurring(int) error { return a.unsupported("recurring expenditure") }
func (a *account) Recurring() ([]Transaction, error) {
	return nil, a.unsupported("recurring expenditure")
}

func (a *account) AddBond(*Bond) error               { return a.unsupported("bonds") }
func (a *account) GetBond(string) (*Bond, error)     { return nil, a.unsupported("bonds") }
func (a *account) EditBond(string, int, *Rate) error { return a.unsupported("bonds") }
func (a *account) DeleteBond(string) error           { return a.unsupported("bonds") }
func (a *account) Bonds(int) ([]*Bond, error)        { return nil, a.unsupported("bonds") }
func (a *account) FindBonds(string) ([]*Bond, error) { return nil, a.unsupported("bonds") }

func applyEdit(tx Transaction, edit TransactionEdit) Transaction {
	if edit.Description != "" {
		tx.Description = edit.Description
	}
	if edit.Amount != nil {
		tx.Amount = *edit.Amount
	}
	if edit.Date != nil {
		tx.Date = *edit.Date
	}
	if edit.Category != "" {
		tx.Category = edit.Category
	}
	return tx
}
