package fintrack

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrack/date"
)

// InvestmentAccount holds bonds instead of an income schedule. It rejects
// recurring expenditure operations.
type InvestmentAccount struct {
	account
	bonds []*Bond
}

// NewInvestmentAccount returns an investment account.
func NewInvestmentAccount(name string, balance Money) *InvestmentAccount {
	v := &InvestmentAccount{}
	v.name = name
	v.balance = balance
	return v
}

func (v *InvestmentAccount) Type() AccountType { return Investment }

// AddBond registers a bond. Bond names are unique within the account.
func (v *InvestmentAccount) AddBond(b *Bond) error {
	for _, existing := range v.bonds {
		if existing.Name == b.Name {
			return fmt.Errorf("%w: bond %q already exists in %s", ErrDuplicateName, b.Name, v.name)
		}
	}
	v.bonds = append(v.bonds, b)
	return nil
}

func (v *InvestmentAccount) GetBond(name string) (*Bond, error) {
	for _, b := range v.bonds {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: bond %q in %s", ErrNotFound, name, v.name)
}

// EditBond updates the term and rate of a bond. A zero year or nil rate
// keeps the current value.
func (v *InvestmentAccount) EditBond(name string, year int, rate *Rate) error {
	b, err := v.GetBond(name)
	if err != nil {
		return err
	}
	if year > 0 {
		b.Year = year
	}
	if rate != nil {
		b.Rate = *rate
	}
	return nil
}

func (v *InvestmentAccount) DeleteBond(name string) error {
	for i, b := range v.bonds {
		if b.Name == name {
			v.bonds = append(v.bonds[:i], v.bonds[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: bond %q in %s", ErrNotFound, name, v.name)
}

// Bonds returns up to limit bonds in insertion order (0 for all).
func (v *InvestmentAccount) Bonds(limit int) ([]*Bond, error) {
	if len(v.bonds) == 0 {
		return nil, fmt.Errorf("%w: no bonds in %s", ErrEmptyList, v.name)
	}
	out := v.bonds
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// FindBonds returns bonds whose name contains the keyword, case-insensitively.
func (v *InvestmentAccount) FindBonds(keyword string) ([]*Bond, error) {
	var out []*Bond
	for _, b := range v.bonds {
		if strings.Contains(strings.ToLower(b.Name), strings.ToLower(keyword)) {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no bond in %s matches %q", ErrNotFound, v.name, keyword)
	}
	return out, nil
}

// Update credits due bond interest into the account and flags matured bonds.
func (v *InvestmentAccount) Update(now date.Date) []string {
	var remarks []string
	for _, b := range v.bonds {
		wasMature := b.IsMature
		for _, credit := range b.CreditDue(now) {
			v.AddDeposit(credit)
			remarks = append(remarks, fmt.Sprintf("%s: credited %s interest %s on %s", v.name, b.Name, credit.Amount, credit.Date))
		}
		if b.IsMature && !wasMature {
			remarks = append(remarks, fmt.Sprintf("%s: bond %s has matured", v.name, b.Name))
		}
	}
	return remarks
}
