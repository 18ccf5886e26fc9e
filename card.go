package fintrack

import (
	"fmt"
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/google/uuid"
)

// Card is a credit card tracked by its unpaid (current bills) and paid
// (closed bills) transaction lists. The limit is advisory: spending past
// it is reported, never blocked.
type Card struct {
	name   string
	id     string
	limit  Money
	rebate Rate
	unpaid []Transaction
	paid   []Transaction
}

// NewCard returns a card with a fresh stable identifier.
func NewCard(name string, limit Money, rebate Rate) *Card {
	return &Card{name: name, id: uuid.NewString(), limit: limit, rebate: rebate}
}

func (c *Card) Name() string      { return c.name }
func (c *Card) ID() string        { return c.id }
func (c *Card) Limit() Money      { return c.limit }
func (c *Card) Rebate() Rate      { return c.rebate }
func (c *Card) Rename(name string) { c.name = name }
func (c *Card) SetLimit(m Money)  { c.limit = m }
func (c *Card) SetRebate(r Rate)  { c.rebate = r }

// SetID is used by the decoder when rebuilding state.
func (c *Card) SetID(id string) { c.id = id }

// Unpaid returns the current-bill transactions.
func (c *Card) Unpaid() []Transaction { return c.unpaid }

// Paid returns the closed-bill transactions. The list is produced by
// CloseBill, never mutated directly.
func (c *Card) Paid() []Transaction { return c.paid }

// monthSpend sums unpaid expenditures billed in the given month.
func (c *Card) monthSpend(year int, month time.Month) Money {
	var sum Money
	for _, tx := range c.unpaid {
		if tx.BillDate.Year() == year && tx.BillDate.Month() == month {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// AddExpenditure appends to the unpaid list unconditionally. The returned
// remark is non-empty when the month's spend exceeds the card limit.
func (c *Card) AddExpenditure(tx Transaction) (remark string, err error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}
	tx.CardID = c.id
	if tx.BillDate.IsZero() {
		tx.BillDate = tx.Date
	}
	c.unpaid = append(c.unpaid, tx)
	spent := c.monthSpend(tx.BillDate.Year(), tx.BillDate.Month())
	if spent.GreaterThan(c.limit) {
		remark = fmt.Sprintf("%s: spend %s for %s %d exceeds limit %s",
			c.name, spent, tx.BillDate.Month(), tx.BillDate.Year(), c.limit)
	}
	return remark, nil
}

// at resolves a 1-based index into the unpaid list.
func (c *Card) at(index int) (*Transaction, error) {
	if index < 1 || index > len(c.unpaid) {
		return nil, fmt.Errorf("%w: transaction %d of card %s (have %d)", ErrIndexOutOfRange, index, c.name, len(c.unpaid))
	}
	return &c.unpaid[index-1], nil
}

// EditExpenditure replaces fields of the indexed unpaid expenditure.
func (c *Card) EditExpenditure(index int, edit TransactionEdit) error {
	tx, err := c.at(index)
	if err != nil {
		return err
	}
	edited := applyEdit(*tx, edit)
	if err := edited.Validate(); err != nil {
		return err
	}
	*tx = edited
	return nil
}

// DeleteExpenditure removes the indexed unpaid expenditure.
func (c *Card) DeleteExpenditure(index int) error {
	if _, err := c.at(index); err != nil {
		return err
	}
	c.unpaid = append(c.unpaid[:index-1], c.unpaid[index:]...)
	return nil
}

// Expenditures returns up to limit most recent unpaid expenditures (0 for all).
func (c *Card) Expenditures(limit int) ([]Transaction, error) {
	if len(c.unpaid) == 0 {
		return nil, fmt.Errorf("%w: no expenditures on card %s", ErrEmptyList, c.name)
	}
	out := c.unpaid
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// FindTransactions searches both unpaid and paid lists.
func (c *Card) FindTransactions(r date.Range, description, category string) ([]Transaction, error) {
	var out []Transaction
	for _, tx := range c.unpaid {
		if tx.Matches(r, description, category) {
			out = append(out, tx)
		}
	}
	for _, tx := range c.paid {
		if tx.Matches(r, description, category) {
			out = append(out, tx)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no transaction on card %s matches the search", ErrNotFound, c.name)
	}
	return out, nil
}

// CloseBill migrates the given month's unpaid expenditures to the paid
// list and returns the rebate earned on them. Closing a month with no
// spend fails with ErrNotFound and migrates nothing.
func (c *Card) CloseBill(year int, month time.Month) (rebate Money, err error) {
	var kept, closed []Transaction
	var sum Money
	for _, tx := range c.unpaid {
		if tx.BillDate.Year() == year && tx.BillDate.Month() == month {
			closed = append(closed, tx)
			sum = sum.Add(tx.Amount)
		} else {
			kept = append(kept, tx)
		}
	}
	if len(closed) == 0 {
		return Money{}, fmt.Errorf("%w: no unpaid transaction on card %s for %s %d", ErrNotFound, c.name, month, year)
	}
	c.unpaid = kept
	c.paid = append(c.paid, closed...)
	return c.rebate.ApplyTo(sum), nil
}
