// Package renderer formats domain objects as markdown, ready to be
// rendered on a terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrack"
)

// Accounts renders a bank account listing.
func Accounts(accounts []fintrack.Account) string {
	var b strings.Builder
	b.WriteString("| # | Account | Type | Balance | Income | Next Income |\n")
	b.WriteString("|---|---------|------|--------:|-------:|-------------|\n")
	for i, acc := range accounts {
		income, nextIncome := "-", "-"
		if acc.Type() == fintrack.Saving {
			income = acc.Income().String()
			if !acc.NextIncomeDate().IsZero() {
				nextIncome = acc.NextIncomeDate().String()
			}
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			i+1, acc.Name(), acc.Type(), acc.Balance(), income, nextIncome)
	}
	return b.String()
}

// Cards renders a card listing.
func Cards(cards []*fintrack.Card) string {
	var b strings.Builder
	b.WriteString("| # | Card | Limit | Rebate | Unpaid | Paid |\n")
	b.WriteString("|---|------|------:|-------:|-------:|-----:|\n")
	for i, c := range cards {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %d | %d |\n",
			i+1, c.Name(), c.Limit(), c.Rebate(), len(c.Unpaid()), len(c.Paid()))
	}
	return b.String()
}

// Bonds renders a bond listing.
func Bonds(bonds []*fintrack.Bond) string {
	var b strings.Builder
	b.WriteString("| # | Bond | Amount | Rate | Bought | Years | Next Interest | Status |\n")
	b.WriteString("|---|------|-------:|-----:|--------|------:|---------------|--------|\n")
	for i, bond := range bonds {
		status := "active"
		if bond.IsMature {
			status = "mature"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %d | %s | %s |\n",
			i+1, bond.Name, bond.Amount, bond.Rate, bond.BoughtDate, bond.Year,
			bond.NextDateToCreditInterest, status)
	}
	return b.String()
}

// Goals renders a goal listing.
func Goals(goals []*fintrack.Goal) string {
	var b strings.Builder
	b.WriteString("| # | Goal | Target | By | Linked Account | Done | Achieved |\n")
	b.WriteString("|---|------|-------:|----|----------------|------|----------|\n")
	for i, g := range goals {
		linked := "-"
		if g.SavingsName != "" {
			linked = g.SavingsName
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			i+1, g.Name, g.Amount, g.Date, linked, yesNo(g.Done), yesNo(g.Achieved))
	}
	return b.String()
}

// Transactions renders a transaction listing. Indexes are 1-based and
// match the indexes accepted by edit and delete operations.
func Transactions(txs []fintrack.Transaction) string {
	var b strings.Builder
	b.WriteString("| # | Date | Description | Amount | Category | Kind |\n")
	b.WriteString("|---|------|-------------|-------:|----------|------|\n")
	for i, tx := range txs {
		kind := "deposit"
		if tx.Spent {
			kind = "expenditure"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			i+1, tx.Date, tx.Description, tx.Amount, tx.Category, kind)
	}
	return b.String()
}

// Achievements renders the achievement record.
func Achievements(achievements []fintrack.Achievement) string {
	var b strings.Builder
	b.WriteString("| # | Achievement | Amount | Category | Date |\n")
	b.WriteString("|---|-------------|-------:|----------|------|\n")
	for i, a := range achievements {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", i+1, a.Name, a.Amount, a.Category, a.Date)
	}
	return b.String()
}

// Summary renders a one-page overview of the whole profile.
func Summary(p *fintrack.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Profile %s\n\n", p.Username)

	if accounts := p.Banks.All(); len(accounts) > 0 {
		b.WriteString("## Bank Accounts\n\n")
		b.WriteString(Accounts(accounts))
		b.WriteString("\n")
	}
	if cards := p.Cards.All(); len(cards) > 0 {
		b.WriteString("## Credit Cards\n\n")
		b.WriteString(Cards(cards))
		b.WriteString("\n")
	}
	if goals := p.Goals.All(); len(goals) > 0 {
		b.WriteString("## Goals\n\n")
		b.WriteString(Goals(goals))
		b.WriteString("\n")
	}
	if len(p.Achievements) > 0 {
		b.WriteString("## Achievements\n\n")
		b.WriteString(Achievements(p.Achievements))
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
