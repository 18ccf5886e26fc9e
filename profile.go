package fintrack

import (
	"fmt"
	"time"

	"github.com/etnz/fintrack/date"
)

// OwnerKind selects which collection owns a transaction-bearing entity.
// It replaces the loose type strings of the command layer: parsing fails
// loudly instead of silently ignoring an unknown value.
type OwnerKind int

const (
	KindBank OwnerKind = iota
	KindCard
)

func (k OwnerKind) String() string {
	switch k {
	case KindBank:
		return "bank"
	case KindCard:
		return "card"
	default:
		return "unknown"
	}
}

// ParseOwnerKind parses a string into an OwnerKind.
func ParseOwnerKind(s string) (OwnerKind, error) {
	switch s {
	case "bank":
		return KindBank, nil
	case "card":
		return KindCard, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q (want bank or card)", ErrInvalidArgument, s)
	}
}

// Profile is the aggregate root representing one user's complete
// financial state. It owns exactly one bank list, one card list, one
// goals list and the achievement record.
type Profile struct {
	Username     string
	Banks        *BankList
	Cards        *CardList
	Goals        *GoalsList
	Achievements []Achievement
}

// NewProfile creates an empty profile for the given user.
func NewProfile(username string) *Profile {
	return &Profile{
		Username: username,
		Banks:    NewBankList(),
		Cards:    NewCardList(),
		Goals:    NewGoalsList(),
	}
}

// Bank operations.

func (p *Profile) AddBank(acc Account) error { return p.Banks.Add(acc) }

// DeleteBank removes the account and clears the link on any goal that
// referenced it.
func (p *Profile) DeleteBank(name string, t AccountType) error {
	acc, err := p.Banks.Delete(name, t)
	if err != nil {
		return err
	}
	if acc.Type() == Saving {
		p.Goals.UnlinkAccount(name)
	}
	return nil
}

func (p *Profile) ListBanks(t AccountType) ([]Account, error) { return p.Banks.List(t) }

func (p *Profile) EditSavings(name, newName string, amount, income *Money) error {
	return p.Banks.EditSavings(name, newName, amount, income)
}

func (p *Profile) EditInvestment(name, newName string, amount *Money) error {
	return p.Banks.EditInvestment(name, newName, amount)
}

// Expenditure and deposit operations, dispatched by owner kind.

// AddExpenditure records an expenditure against a bank account or a card.
// The remark is non-empty for card spend past the advisory limit.
func (p *Profile) AddExpenditure(kind OwnerKind, name string, tx Transaction) (remark string, err error) {
	switch kind {
	case KindBank:
		return "", p.Banks.AddExpenditure(name, tx)
	case KindCard:
		return p.Cards.AddExpenditure(name, tx)
	default:
		return "", fmt.Errorf("%w: kind %v", ErrInvalidArgument, kind)
	}
}

func (p *Profile) EditExpenditure(kind OwnerKind, name string, index int, edit TransactionEdit) error {
	switch kind {
	case KindBank:
		return p.Banks.EditExpenditure(name, index, edit)
	case KindCard:
		return p.Cards.EditExpenditure(name, index, edit)
	default:
		return fmt.Errorf("%w: kind %v", ErrInvalidArgument, kind)
	}
}

func (p *Profile) DeleteExpenditure(kind OwnerKind, name string, index int) error {
	switch kind {
	case KindBank:
		return p.Banks.DeleteExpenditure(name, index)
	case KindCard:
		return p.Cards.DeleteExpenditure(name, index)
	default:
		return fmt.Errorf("%w: kind %v", ErrInvalidArgument, kind)
	}
}

func (p *Profile) ListExpenditures(kind OwnerKind, name string, limit int) ([]Transaction, error) {
	switch kind {
	case KindBank:
		return p.Banks.Expenditures(name, limit)
	case KindCard:
		return p.Cards.Expenditures(name, limit)
	default:
		return nil, fmt.Errorf("%w: kind %v", ErrInvalidArgument, kind)
	}
}

func (p *Profile) AddDeposit(name string, tx Transaction) error {
	return p.Banks.AddDeposit(name, tx)
}

func (p *Profile) EditDeposit(name string, index int, edit TransactionEdit) error {
	return p.Banks.EditDeposit(name, index, edit)
}

func (p *Profile) DeleteDeposit(name string, index int) error {
	return p.Banks.DeleteDeposit(name, index)
}

func (p *Profile) ListDeposits(name string, limit int) ([]Transaction, error) {
	return p.Banks.Deposits(name, limit)
}

// Recurring expenditure operations (savings accounts only; the account
// itself rejects other variants).

func (p *Profile) AddRecurring(name string, tx Transaction) error {
	return p.Banks.AddRecurring(name, tx)
}

func (p *Profile) EditRecurring(name string, index int, edit TransactionEdit) error {
	return p.Banks.EditRecurring(name, index, edit)
}

func (p *Profile) DeleteRecurring(name string, index int) error {
	return p.Banks.DeleteRecurring(name, index)
}

func (p *Profile) ListRecurring(name string) ([]Transaction, error) {
	return p.Banks.Recurring(name)
}

// Bond operations (investment accounts only).

func (p *Profile) AddBond(bankName string, b *Bond) error { return p.Banks.AddBond(bankName, b) }

func (p *Profile) GetBond(bankName, bondName string) (*Bond, error) {
	return p.Banks.GetBond(bankName, bondName)
}

func (p *Profile) EditBond(bankName, bondName string, year int, rate *Rate) error {
	return p.Banks.EditBond(bankName, bondName, year, rate)
}

func (p *Profile) DeleteBond(bankName, bondName string) error {
	return p.Banks.DeleteBond(bankName, bondName)
}

func (p *Profile) ListBonds(bankName string, limit int) ([]*Bond, error) {
	return p.Banks.Bonds(bankName, limit)
}

// FindBonds searches bond names within an investment account.
func (p *Profile) FindBonds(bankName, keyword string) ([]*Bond, error) {
	acc, err := p.Banks.GetInvestment(bankName)
	if err != nil {
		return nil, err
	}
	return acc.FindBonds(keyword)
}

// Card operations.

func (p *Profile) AddCard(c *Card) error { return p.Cards.Add(c) }

func (p *Profile) DeleteCard(name string) error {
	_, err := p.Cards.Delete(name)
	return err
}

func (p *Profile) ListCards() ([]*Card, error) { return p.Cards.List() }

func (p *Profile) EditCard(name, newName string, limit *Money, rebate *Rate) error {
	return p.Cards.Edit(name, newName, limit, rebate)
}

// CloseCardBill closes the card's bill for the given month and deposits
// the rebate into the named savings account (skipped when rebateTo is
// blank or the rebate is zero).
func (p *Profile) CloseCardBill(cardName string, year int, month time.Month, rebateTo string) (Money, error) {
	if rebateTo != "" {
		// Validate the destination before mutating the card.
		if _, err := p.Banks.GetSaving(rebateTo); err != nil {
			return Money{}, err
		}
	}
	rebate, err := p.Cards.CloseBill(cardName, year, month)
	if err != nil {
		return Money{}, err
	}
	if rebateTo != "" && rebate.IsPositive() {
		deposit := NewDeposit(fmt.Sprintf("Rebate from %s", cardName), rebate, date.Today(), CategoryDeposit)
		if err := p.Banks.AddDeposit(rebateTo, deposit); err != nil {
			return rebate, err
		}
	}
	return rebate, nil
}

// Goal operations.

func (p *Profile) AddGoal(g *Goal) error {
	if g.SavingsName != "" {
		// Linking validates existence only, never sufficiency of funds.
		if _, err := p.Banks.GetSaving(g.SavingsName); err != nil {
			return err
		}
	}
	return p.Goals.Add(g)
}

func (p *Profile) DeleteGoal(name string) error { return p.Goals.Delete(name) }

func (p *Profile) ListGoals() ([]*Goal, error) { return p.Goals.List() }

func (p *Profile) EditGoal(name string, edit GoalEdit) error {
	if edit.SavingsName != "" {
		if _, err := p.Banks.GetSaving(edit.SavingsName); err != nil {
			return err
		}
	}
	return p.Goals.Edit(name, edit)
}

// TransferFund moves amount between two bank accounts. Both legs are
// validated before either side is mutated: the debit can no longer fail
// after the checks, and the credit is unconditional, so the transfer is
// atomic from the caller's perspective.
func (p *Profile) TransferFund(from, to string, amount Money, on date.Date) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: transfer amount must be positive", ErrInvalidArgument)
	}
	if from == to {
		return fmt.Errorf("%w: cannot transfer from %q to itself", ErrInvalidArgument, from)
	}
	if _, err := p.Banks.ExistsToTransfer(from, amount); err != nil {
		return err
	}
	if _, err := p.Banks.ExistsToReceive(to); err != nil {
		return err
	}
	out := NewExpenditure(fmt.Sprintf("Fund Transfer to %s", to), amount, on, CategoryTransfer)
	if err := p.Banks.AddExpenditure(from, out); err != nil {
		return err
	}
	in := NewDeposit(fmt.Sprintf("Fund Received from %s", from), amount, on, CategoryDeposit)
	return p.Banks.AddDeposit(to, in)
}

// Find operations.

// FindAccounts searches bank accounts of the given type by name keyword.
func (p *Profile) FindAccounts(keyword string, t AccountType) ([]Account, error) {
	return p.Banks.FindAccounts(keyword, t)
}

// FindCards searches cards by name keyword.
func (p *Profile) FindCards(keyword string) ([]*Card, error) {
	return p.Cards.FindCards(keyword)
}

// FindTransactions searches an account's or card's transactions by date
// range and keywords.
func (p *Profile) FindTransactions(kind OwnerKind, name string, r date.Range, description, category string) ([]Transaction, error) {
	switch kind {
	case KindBank:
		return p.Banks.FindTransactions(name, r, description, category)
	case KindCard:
		return p.Cards.FindTransactions(name, r, description, category)
	default:
		return nil, fmt.Errorf("%w: kind %v", ErrInvalidArgument, kind)
	}
}

// Update applies every due schedule across the profile: savings income,
// recurring expenditures, bond interest and maturity, then goal
// achievement. It returns one remark per change.
func (p *Profile) Update(now date.Date) []string {
	remarks := p.Banks.Update(now)

	for _, g := range p.Goals.All() {
		if g.Achieved || g.SavingsName == "" {
			continue
		}
		if g.Date.Before(now) {
			continue // target date passed unachieved
		}
		acc, err := p.Banks.GetSaving(g.SavingsName)
		if err != nil {
			continue
		}
		if acc.Balance().GreaterThanOrEqual(g.Amount) {
			g.MarkAchieved()
			g.MarkDone()
			p.Achievements = append(p.Achievements, Achievement{
				Name:     g.Name,
				Amount:   g.Amount,
				Category: "Goals",
				Date:     now,
			})
			remarks = append(remarks, fmt.Sprintf("goal %q achieved with %s in %s", g.Name, acc.Balance(), g.SavingsName))
		}
	}
	return remarks
}
