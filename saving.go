package fintrack

import (
	"fmt"

	"github.com/etnz/fintrack/date"
)

// maxRecurring caps the recurring expenditure list of a savings account.
const maxRecurring = 100

// SavingsAccount accrues a monthly income and materializes recurring
// expenditures on schedule. It does not hold bonds.
type SavingsAccount struct {
	account
	income         Money
	nextIncomeDate date.Date
	recurring      []Transaction // Date field holds the next due date
}

// NewSavingsAccount returns a savings account. A positive income is
// credited monthly starting at nextIncome.
func NewSavingsAccount(name string, balance, income Money, nextIncome date.Date) *SavingsAccount {
	s := &SavingsAccount{income: income, nextIncomeDate: nextIncome}
	s.name = name
	s.balance = balance
	return s
}

func (s *SavingsAccount) Type() AccountType        { return Saving }
func (s *SavingsAccount) Income() Money            { return s.income }
func (s *SavingsAccount) NextIncomeDate() date.Date { return s.nextIncomeDate }
func (s *SavingsAccount) SetIncome(m Money)        { s.income = m }

// SetNextIncomeDate is used by the decoder when rebuilding state.
func (s *SavingsAccount) SetNextIncomeDate(d date.Date) { s.nextIncomeDate = d }

// AddRecurring appends a recurring expenditure template. Its Date field is
// the next due date.
func (s *SavingsAccount) AddRecurring(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if len(s.recurring) >= maxRecurring {
		return fmt.Errorf("%w: recurring expenditure list of %s is full (%d)", ErrInvalidArgument, s.name, maxRecurring)
	}
	s.recurring = append(s.recurring, tx)
	return nil
}

func (s *SavingsAccount) EditRecurring(index int, edit TransactionEdit) error {
	if index < 1 || index > len(s.recurring) {
		return fmt.Errorf("%w: recurring expenditure %d of %s (have %d)", ErrIndexOutOfRange, index, s.name, len(s.recurring))
	}
	edited := applyEdit(s.recurring[index-1], edit)
	if err := edited.Validate(); err != nil {
		return err
	}
	s.recurring[index-1] = edited
	return nil
}

func (s *SavingsAccount) DeleteRecurring(index int) error {
	if index < 1 || index > len(s.recurring) {
		return fmt.Errorf("%w: recurring expenditure %d of %s (have %d)", ErrIndexOutOfRange, index, s.name, len(s.recurring))
	}
	s.recurring = append(s.recurring[:index-1], s.recurring[index:]...)
	return nil
}

func (s *SavingsAccount) Recurring() ([]Transaction, error) {
	if len(s.recurring) == 0 {
		return nil, fmt.Errorf("%w: no recurring expenditures in %s", ErrEmptyList, s.name)
	}
	return s.recurring, nil
}

// Update credits monthly income and materializes every recurring
// expenditure that has come due, catching up on missed periods. A
// recurring item that cannot be applied for lack of funds keeps its due
// date and is reported; it will be retried on the next update.
func (s *SavingsAccount) Update(now date.Date) []string {
	var remarks []string

	if s.income.IsPositive() && !s.nextIncomeDate.IsZero() {
		for !s.nextIncomeDate.After(now) {
			due := s.nextIncomeDate
			s.AddDeposit(NewDeposit("Income Credit", s.income, due, CategoryDeposit))
			s.nextIncomeDate = s.nextIncomeDate.AddMonths(1)
			remarks = append(remarks, fmt.Sprintf("%s: credited income %s on %s", s.name, s.income, due))
		}
	}

	for i := range s.recurring {
		item := &s.recurring[i]
		for !item.Date.After(now) {
			tx := NewExpenditure(item.Description, item.Amount, item.Date, item.Category)
			if err := s.AddExpenditure(tx); err != nil {
				remarks = append(remarks, fmt.Sprintf("%s: skipped recurring %q due %s: %v", s.name, item.Description, item.Date, err))
				break
			}
			remarks = append(remarks, fmt.Sprintf("%s: applied recurring %q %s on %s", s.name, item.Description, item.Amount, item.Date))
			item.Date = item.Date.AddMonths(1)
		}
	}
	return remarks
}
