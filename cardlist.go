package fintrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/fintrack/date"
)

// CardList is the ordered collection of credit cards, a single flat
// namespace (cards are not typed).
type CardList struct {
	cards []*Card
}

// NewCardList creates an empty card list.
func NewCardList() *CardList { return &CardList{} }

// Add appends a card.
func (l *CardList) Add(c *Card) error {
	for _, existing := range l.cards {
		if existing.Name() == c.Name() {
			return fmt.Errorf("%w: card %q", ErrDuplicateName, c.Name())
		}
	}
	l.cards = append(l.cards, c)
	return nil
}

// Get returns the card with that name.
func (l *CardList) Get(name string) (*Card, error) {
	for _, c := range l.cards {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: card %q", ErrNotFound, name)
}

// Delete removes the card with that name.
func (l *CardList) Delete(name string) (*Card, error) {
	for i, c := range l.cards {
		if c.Name() == name {
			l.cards = append(l.cards[:i], l.cards[i+1:]...)
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: card %q", ErrNotFound, name)
}

// List returns all cards in insertion order.
func (l *CardList) List() ([]*Card, error) {
	if len(l.cards) == 0 {
		return nil, fmt.Errorf("%w: no cards", ErrEmptyList)
	}
	return l.cards, nil
}

// All returns every card, empty when none.
func (l *CardList) All() []*Card { return l.cards }

// Edit updates name, limit and rebate. Blank or nil fields keep current values.
func (l *CardList) Edit(name, newName string, limit *Money, rebate *Rate) error {
	c, err := l.Get(name)
	if err != nil {
		return err
	}
	if newName != "" && newName != name {
		for _, existing := range l.cards {
			if existing != c && existing.Name() == newName {
				return fmt.Errorf("%w: card %q", ErrDuplicateName, newName)
			}
		}
		c.Rename(newName)
	}
	if limit != nil {
		c.SetLimit(*limit)
	}
	if rebate != nil {
		c.SetRebate(*rebate)
	}
	return nil
}

// Forwarding operations, dispatched by card name.

func (l *CardList) AddExpenditure(name string, tx Transaction) (remark string, err error) {
	c, err := l.Get(name)
	if err != nil {
		return "", err
	}
	return c.AddExpenditure(tx)
}

func (l *CardList) EditExpenditure(name string, index int, edit TransactionEdit) error {
	c, err := l.Get(name)
	if err != nil {
		return err
	}
	return c.EditExpenditure(index, edit)
}

func (l *CardList) DeleteExpenditure(name string, index int) error {
	c, err := l.Get(name)
	if err != nil {
		return err
	}
	return c.DeleteExpenditure(index)
}

func (l *CardList) Expenditures(name string, limit int) ([]Transaction, error) {
	c, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return c.Expenditures(limit)
}

func (l *CardList) FindTransactions(name string, r date.Range, description, category string) ([]Transaction, error) {
	c, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return c.FindTransactions(r, description, category)
}

// FindCards returns cards whose name contains the keyword, case-insensitively.
func (l *CardList) FindCards(keyword string) ([]*Card, error) {
	var out []*Card
	for _, c := range l.cards {
		if strings.Contains(strings.ToLower(c.Name()), strings.ToLower(keyword)) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no card matches %q", ErrNotFound, keyword)
	}
	return out, nil
}

// CloseBill closes the named card's bill for the given month.
func (l *CardList) CloseBill(name string, year int, month time.Month) (Money, error) {
	c, err := l.Get(name)
	if err != nil {
		return Money{}, err
	}
	return c.CloseBill(year, month)
}
