package fintrack

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrack/date"
	"github.com/google/uuid"
)

// BankList is the ordered collection of bank accounts. Savings and
// investment accounts share a single name namespace.
type BankList struct {
	accounts []Account
}

// NewBankList creates an empty bank list.
func NewBankList() *BankList { return &BankList{} }

// Add appends an account, assigning its stable identifier if it has none.
func (l *BankList) Add(acc Account) error {
	for _, existing := range l.accounts {
		if existing.Name() == acc.Name() {
			return fmt.Errorf("%w: bank account %q", ErrDuplicateName, acc.Name())
		}
	}
	if acc.Ref() == "" {
		acc.setRef(uuid.NewString())
	}
	l.accounts = append(l.accounts, acc)
	return nil
}

// Get returns the account with that name.
func (l *BankList) Get(name string) (Account, error) {
	for _, acc := range l.accounts {
		if acc.Name() == name {
			return acc, nil
		}
	}
	return nil, fmt.Errorf("%w: bank account %q", ErrNotFound, name)
}

// GetSaving returns the savings account with that name, used to resolve
// goal links and income edits.
func (l *BankList) GetSaving(name string) (Account, error) {
	acc, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	if acc.Type() != Saving {
		return nil, fmt.Errorf("%w: %q is not a savings account", ErrInvalidAccountType, name)
	}
	return acc, nil
}

// GetInvestment returns the investment account with that name.
func (l *BankList) GetInvestment(name string) (Account, error) {
	acc, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	if acc.Type() != Investment {
		return nil, fmt.Errorf("%w: %q is not an investment account", ErrInvalidAccountType, name)
	}
	return acc, nil
}

// Delete removes the account with that name and type.
func (l *BankList) Delete(name string, t AccountType) (Account, error) {
	for i, acc := range l.accounts {
		if acc.Name() == name && acc.Type() == t {
			l.accounts = append(l.accounts[:i], l.accounts[i+1:]...)
			return acc, nil
		}
	}
	return nil, fmt.Errorf("%w: %s account %q", ErrNotFound, t, name)
}

// List returns the accounts of the given type in insertion order.
func (l *BankList) List(t AccountType) ([]Account, error) {
	var out []Account
	for _, acc := range l.accounts {
		if acc.Type() == t {
			out = append(out, acc)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no %s account", ErrEmptyList, t)
	}
	return out, nil
}

// All returns every account in insertion order.
func (l *BankList) All() []Account { return l.accounts }

// rename applies a name change, rejecting collisions with any other account.
func (l *BankList) rename(acc Account, newName string) error {
	for _, existing := range l.accounts {
		if existing != acc && existing.Name() == newName {
			return fmt.Errorf("%w: bank account %q", ErrDuplicateName, newName)
		}
	}
	acc.Rename(newName)
	return nil
}

// EditSavings updates name, balance and income of a savings account.
// Blank or nil fields keep current values.
func (l *BankList) EditSavings(name, newName string, amount, income *Money) error {
	acc, err := l.GetSaving(name)
	if err != nil {
		return err
	}
	if newName != "" && newName != name {
		if err := l.rename(acc, newName); err != nil {
			return err
		}
	}
	if amount != nil {
		acc.SetBalance(*amount)
	}
	if income != nil {
		acc.SetIncome(*income)
	}
	return nil
}

// EditInvestment updates name and balance of an investment account.
func (l *BankList) EditInvestment(name, newName string, amount *Money) error {
	acc, err := l.GetInvestment(name)
	if err != nil {
		return err
	}
	if newName != "" && newName != name {
		if err := l.rename(acc, newName); err != nil {
			return err
		}
	}
	if amount != nil {
		acc.SetBalance(*amount)
	}
	return nil
}

// ExistsToTransfer validates that the named account exists and holds at
// least amount, returning its type. Invoked before any transfer mutation.
func (l *BankList) ExistsToTransfer(name string, amount Money) (AccountType, error) {
	acc, err := l.Get(name)
	if err != nil {
		return 0, err
	}
	if acc.Balance().LessThan(amount) {
		return 0, fmt.Errorf("%w: cannot transfer %s from %q holding %s", ErrInsufficientFunds, amount, name, acc.Balance())
	}
	return acc.Type(), nil
}

// ExistsToReceive validates that the named account exists, returning its type.
func (l *BankList) ExistsToReceive(name string) (AccountType, error) {
	acc, err := l.Get(name)
	if err != nil {
		return 0, err
	}
	return acc.Type(), nil
}

// Forwarding operations, dispatched by account name.

func (l *BankList) AddExpenditure(name string, tx Transaction) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.AddExpenditure(tx)
}

func (l *BankList) AddDeposit(name string, tx Transaction) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.AddDeposit(tx)
}

func (l *BankList) EditExpenditure(name string, index int, edit TransactionEdit) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.EditExpenditure(index, edit)
}

func (l *BankList) EditDeposit(name string, index int, edit TransactionEdit) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.EditDeposit(index, edit)
}

func (l *BankList) DeleteExpenditure(name string, index int) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.DeleteExpenditure(index)
}

func (l *BankList) DeleteDeposit(name string, index int) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.DeleteDeposit(index)
}

func (l *BankList) Expenditures(name string, limit int) ([]Transaction, error) {
	acc, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return acc.Expenditures(limit)
}

func (l *BankList) Deposits(name string, limit int) ([]Transaction, error) {
	acc, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return acc.Deposits(limit)
}

func (l *BankList) FindTransactions(name string, r date.Range, description, category string) ([]Transaction, error) {
	acc, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return acc.FindTransactions(r, description, category)
}

func (l *BankList) AddRecurring(name string, tx Transaction) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.AddRecurring(tx)
}

func (l *BankList) EditRecurring(name string, index int, edit TransactionEdit) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.EditRecurring(index, edit)
}

func (l *BankList) DeleteRecurring(name string, index int) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.DeleteRecurring(index)
}

func (l *BankList) Recurring(name string) ([]Transaction, error) {
	acc, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return acc.Recurring()
}

func (l *BankList) AddBond(name string, b *Bond) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.AddBond(b)
}

func (l *BankList) GetBond(name, bondName string) (*Bond, error) {
	acc, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return acc.GetBond(bondName)
}

func (l *BankList) EditBond(name, bondName string, year int, rate *Rate) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.EditBond(bondName, year, rate)
}

func (l *BankList) DeleteBond(name, bondName string) error {
	acc, err := l.Get(name)
	if err != nil {
		return err
	}
	return acc.DeleteBond(bondName)
}

func (l *BankList) Bonds(name string, limit int) ([]*Bond, error) {
	acc, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return acc.Bonds(limit)
}

// FindAccounts returns the accounts of the given type whose name contains
// the keyword, case-insensitively.
func (l *BankList) FindAccounts(keyword string, t AccountType) ([]Account, error) {
	var out []Account
	for _, acc := range l.accounts {
		if acc.Type() == t && strings.Contains(strings.ToLower(acc.Name()), strings.ToLower(keyword)) {
			out = append(out, acc)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no %s account matches %q", ErrNotFound, t, keyword)
	}
	return out, nil
}

// Update runs every account's due schedules once, in insertion order.
func (l *BankList) Update(now date.Date) []string {
	var remarks []string
	for _, acc := range l.accounts {
		remarks = append(remarks, acc.Update(now)...)
	}
	return remarks
}
