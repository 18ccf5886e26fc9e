package fintrack

import (
	"fmt"

	"github.com/etnz/fintrack/date"
)

// Bond is a fixed-term interest-bearing instrument held inside an
// investment account. Interest is credited semi-annually at half the
// annual rate until the bond matures.
type Bond struct {
	Name       string
	Amount     Money // principal
	Rate       Rate  // annual rate in percent
	BoughtDate date.Date
	Year       int // term in years

	NextDateToCreditInterest date.Date
	IsMature                 bool
}

// NewBond returns a bond with its first interest credit six months after purchase.
func NewBond(name string, amount Money, rate Rate, bought date.Date, year int) *Bond {
	return &Bond{
		Name:                     name,
		Amount:                   amount,
		Rate:                     rate,
		BoughtDate:               bought,
		Year:                     year,
		NextDateToCreditInterest: bought.AddMonths(6),
	}
}

// MaturityDate is the date the bond term ends.
func (b *Bond) MaturityDate() date.Date { return b.BoughtDate.AddYears(b.Year) }

// InterestPayment is the amount credited on each semi-annual interest date.
func (b *Bond) InterestPayment() Money { return b.Rate.Halve().ApplyTo(b.Amount) }

// CreditDue returns one deposit transaction per interest date that has
// passed, advancing the stored next-credit date each time. When the term
// has ended the maturity flag is set; the flag never reverts.
func (b *Bond) CreditDue(now date.Date) []Transaction {
	if b.IsMature {
		return nil
	}
	var credits []Transaction
	maturity := b.MaturityDate()
	for !b.NextDateToCreditInterest.After(now) && !b.NextDateToCreditInterest.After(maturity) {
		credits = append(credits, NewDeposit(
			fmt.Sprintf("Bond Interest from %s", b.Name),
			b.InterestPayment(),
			b.NextDateToCreditInterest,
			CategoryBonds,
		))
		b.NextDateToCreditInterest = b.NextDateToCreditInterest.AddMonths(6)
	}
	if !maturity.After(now) {
		b.IsMature = true
	}
	return credits
}

func (b *Bond) String() string {
	status := "active"
	if b.IsMature {
		status = "mature"
	}
	return fmt.Sprintf("%s %s at %s over %d years, bought %s (%s)",
		b.Name, b.Amount, b.Rate, b.Year, b.BoughtDate, status)
}
