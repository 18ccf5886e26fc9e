package fintrack

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// This file persists a full profile into a folder of flat CSV files, one
// per collection plus one per account or card transaction list.
//
// The overall strategy is a full-state rewrite: after every mutating
// command the CLI saves the whole profile. Each file is written to a temp
// file in the same directory and renamed over the target, so a crash
// never leaves a half-written file. Per-entity files are keyed by the
// entity's stable identifier, never by its list position, so reordering
// or deleting entries cannot corrupt the mapping; files for entities that
// no longer exist are removed on save.

const (
	profileFilename         = "profile.csv"
	bankListFilename        = "profile_banklist.csv"
	cardListFilename        = "profile_cardlist.csv"
	goalListFilename        = "profile_goallist.csv"
	achievementListFilename = "profile_achievementlist.csv"

	savingTransactionSuffix     = "_saving_transactionList.csv"
	savingRecurringSuffix       = "_saving_recurring_transactionList.csv"
	investmentTransactionSuffix = "_investment_transactionList.csv"
	investmentBondSuffix        = "_investment_bondList.csv"
	cardPaidSuffix              = "_card_paid_transactionList.csv"
	cardUnpaidSuffix            = "_card_unpaid_transactionList.csv"
)

var (
	bankListHeader        = []string{"accountName", "type", "amount", "income", "nextIncomeDate", "ref"}
	transactionHeader     = []string{"description", "amount", "date", "category", "spent", "cardId", "billDate"}
	recurringHeader       = []string{"description", "amount", "date", "category", "spent"}
	bondHeader            = []string{"bondName", "amount", "rate", "boughtDate", "year", "nextDateToCreditInterest", "isMature"}
	cardListHeader        = []string{"cardName", "cardLimit", "rebateRate", "uuid"}
	goalListHeader        = []string{"goalName", "amount", "date", "savingsAccountName", "doneStatus", "achieveStatus"}
	achievementListHeader = []string{"achievementName", "amount", "category", "date"}
)

// writeFile atomically overwrites dir/name with the given rows, header first.
func writeFile(dir, name string, rows [][]string) error {
	tmp, err := os.CreateTemp(dir, name+".tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", name, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("could not replace %q: %w", name, err)
	}
	return nil
}

// SaveProfile writes the complete profile state into dir.
func SaveProfile(dir string, p *Profile) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}

	if err := writeFile(dir, profileFilename, [][]string{{"Name"}, {p.Username}}); err != nil {
		return err
	}
	if err := saveBanks(dir, p.Banks); err != nil {
		return err
	}
	if err := saveCards(dir, p.Cards); err != nil {
		return err
	}
	if err := saveGoals(dir, p.Goals); err != nil {
		return err
	}
	if err := saveAchievements(dir, p.Achievements); err != nil {
		return err
	}
	return removeStaleFiles(dir, p)
}

func saveBanks(dir string, banks *BankList) error {
	rows := [][]string{bankListHeader}
	for _, acc := range banks.All() {
		rows = append(rows, []string{
			acc.Name(),
			acc.Type().String(),
			acc.Balance().Plain(),
			acc.Income().Plain(),
			acc.NextIncomeDate().String(),
			acc.Ref(),
		})
	}
	if err := writeFile(dir, bankListFilename, rows); err != nil {
		return err
	}

	for _, acc := range banks.All() {
		txRows := [][]string{transactionHeader}
		for _, tx := range acc.Transactions() {
			txRows = append(txRows, encodeTransaction(tx))
		}
		switch acc.Type() {
		case Saving:
			if err := writeFile(dir, acc.Ref()+savingTransactionSuffix, txRows); err != nil {
				return err
			}
			recRows := [][]string{recurringHeader}
			if recurring, err := acc.Recurring(); err == nil {
				for _, tx := range recurring {
					recRows = append(recRows, []string{
						tx.Description, tx.Amount.Plain(), tx.Date.String(), tx.Category, strconv.FormatBool(tx.Spent),
					})
				}
			}
			if err := writeFile(dir, acc.Ref()+savingRecurringSuffix, recRows); err != nil {
				return err
			}
		case Investment:
			if err := writeFile(dir, acc.Ref()+investmentTransactionSuffix, txRows); err != nil {
				return err
			}
			bondRows := [][]string{bondHeader}
			if bonds, err := acc.Bonds(0); err == nil {
				for _, b := range bonds {
					bondRows = append(bondRows, []string{
						b.Name,
						b.Amount.Plain(),
						b.Rate.Plain(),
						b.BoughtDate.String(),
						strconv.Itoa(b.Year),
						b.NextDateToCreditInterest.String(),
						strconv.FormatBool(b.IsMature),
					})
				}
			}
			if err := writeFile(dir, acc.Ref()+investmentBondSuffix, bondRows); err != nil {
				return err
			}
		}
	}
	return nil
}

func saveCards(dir string, cards *CardList) error {
	rows := [][]string{cardListHeader}
	for _, c := range cards.All() {
		rows = append(rows, []string{c.Name(), c.Limit().Plain(), c.Rebate().Plain(), c.ID()})
	}
	if err := writeFile(dir, cardListFilename, rows); err != nil {
		return err
	}

	for _, c := range cards.All() {
		unpaidRows := [][]string{transactionHeader}
		for _, tx := range c.Unpaid() {
			unpaidRows = append(unpaidRows, encodeTransaction(tx))
		}
		if err := writeFile(dir, c.ID()+cardUnpaidSuffix, unpaidRows); err != nil {
			return err
		}
		paidRows := [][]string{transactionHeader}
		for _, tx := range c.Paid() {
			paidRows = append(paidRows, encodeTransaction(tx))
		}
		if err := writeFile(dir, c.ID()+cardPaidSuffix, paidRows); err != nil {
			return err
		}
	}
	return nil
}

func saveGoals(dir string, goals *GoalsList) error {
	rows := [][]string{goalListHeader}
	for _, g := range goals.All() {
		rows = append(rows, []string{
			g.Name,
			g.Amount.Plain(),
			g.Date.String(),
			g.SavingsName,
			strconv.FormatBool(g.Done),
			strconv.FormatBool(g.Achieved),
		})
	}
	return writeFile(dir, goalListFilename, rows)
}

func saveAchievements(dir string, achievements []Achievement) error {
	rows := [][]string{achievementListHeader}
	for _, a := range achievements {
		rows = append(rows, []string{a.Name, a.Amount.Plain(), a.Category, a.Date.String()})
	}
	return writeFile(dir, achievementListFilename, rows)
}

func encodeTransaction(tx Transaction) []string {
	return []string{
		tx.Description,
		tx.Amount.Plain(),
		tx.Date.String(),
		tx.Category,
		strconv.FormatBool(tx.Spent),
		tx.CardID,
		tx.BillDate.String(),
	}
}

// removeStaleFiles deletes per-entity files whose owner no longer exists.
func removeStaleFiles(dir string, p *Profile) error {
	live := make(map[string]bool)
	for _, acc := range p.Banks.All() {
		switch acc.Type() {
		case Saving:
			live[acc.Ref()+savingTransactionSuffix] = true
			live[acc.Ref()+savingRecurringSuffix] = true
		case Investment:
			live[acc.Ref()+investmentTransactionSuffix] = true
			live[acc.Ref()+investmentBondSuffix] = true
		}
	}
	for _, c := range p.Cards.All() {
		live[c.ID()+cardUnpaidSuffix] = true
		live[c.ID()+cardPaidSuffix] = true
	}

	for _, suffix := range []string{
		savingTransactionSuffix, savingRecurringSuffix,
		investmentTransactionSuffix, investmentBondSuffix,
		cardUnpaidSuffix, cardPaidSuffix,
	} {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+suffix))
		if err != nil {
			return err
		}
		for _, match := range matches {
			if !live[filepath.Base(match)] {
				if err := os.Remove(match); err != nil {
					return fmt.Errorf("could not remove stale file %q: %w", match, err)
				}
			}
		}
	}
	return nil
}
