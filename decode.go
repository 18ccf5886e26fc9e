package fintrack

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// LoadProfile reconstructs a profile from the CSV files in dir. It is the
// inverse of SaveProfile. A missing profile file surfaces fs.ErrNotExist
// so callers can decide to start fresh; missing per-entity files are
// treated as empty lists.
func LoadProfile(dir string) (*Profile, error) {
	rows, err := readFile(dir, profileFilename)
	if err != nil {
		return nil, err
	}
	username := ""
	if len(rows) > 0 && len(rows[0]) > 0 {
		username = rows[0][0]
	}
	p := NewProfile(username)

	if err := loadBanks(dir, p.Banks); err != nil {
		return nil, err
	}
	if err := loadCards(dir, p.Cards); err != nil {
		return nil, err
	}
	if err := loadGoals(dir, p.Goals); err != nil {
		return nil, err
	}
	achievements, err := loadAchievements(dir)
	if err != nil {
		return nil, err
	}
	p.Achievements = achievements
	return p, nil
}

// readFile reads dir/name and returns its data rows (header stripped).
func readFile(dir, name string) ([][]string, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // schemas are validated per row with line numbers
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// readFileOrEmpty is readFile, tolerating a missing file.
func readFileOrEmpty(dir, name string) ([][]string, error) {
	rows, err := readFile(dir, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return rows, err
}

func loadBanks(dir string, banks *BankList) error {
	rows, err := readFileOrEmpty(dir, bankListFilename)
	if err != nil {
		return err
	}
	for i, row := range rows {
		line := i + 2 // 1-based, after the header
		if len(row) < 6 {
			return fmt.Errorf("%s:%d: want 6 fields, got %d", bankListFilename, line, len(row))
		}
		name, ref := row[0], row[5]
		balance, err := decodeMoney(row[2])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", bankListFilename, line, err)
		}
		t, err := ParseAccountType(row[1])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", bankListFilename, line, err)
		}

		var acc Account
		switch t {
		case Saving:
			income, err := decodeMoney(row[3])
			if err != nil {
				return fmt.Errorf("%s:%d: %w", bankListFilename, line, err)
			}
			nextIncome, err := decodeDate(row[4])
			if err != nil {
				return fmt.Errorf("%s:%d: %w", bankListFilename, line, err)
			}
			saving := NewSavingsAccount(name, balance, income, nextIncome)
			acc = saving

			recurring, err := loadTransactions(dir, ref+savingRecurringSuffix)
			if err != nil {
				return err
			}
			saving.recurring = recurring
			txs, err := loadTransactions(dir, ref+savingTransactionSuffix)
			if err != nil {
				return err
			}
			saving.transactions = txs

		case Investment:
			investment := NewInvestmentAccount(name, balance)
			acc = investment

			bonds, err := loadBonds(dir, ref+investmentBondSuffix)
			if err != nil {
				return err
			}
			investment.bonds = bonds
			txs, err := loadTransactions(dir, ref+investmentTransactionSuffix)
			if err != nil {
				return err
			}
			investment.transactions = txs
		}

		acc.setRef(ref)
		if err := banks.Add(acc); err != nil {
			return fmt.Errorf("%s:%d: %w", bankListFilename, line, err)
		}
	}
	return nil
}

func loadTransactions(dir, name string) ([]Transaction, error) {
	rows, err := readFileOrEmpty(dir, name)
	if err != nil {
		return nil, err
	}
	var txs []Transaction
	for i, row := range rows {
		line := i + 2
		if len(row) < 5 {
			return nil, fmt.Errorf("%s:%d: want at least 5 fields, got %d", name, line, len(row))
		}
		amount, err := decodeMoney(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		on, err := decodeDate(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		spent, err := strconv.ParseBool(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid spent flag %q", name, line, row[4])
		}
		tx := Transaction{
			Description: row[0],
			Amount:      amount,
			Date:        on,
			Category:    row[3],
			Spent:       spent,
		}
		// The recurring schema stops at the spent flag.
		if len(row) >= 7 {
			tx.CardID = row[5]
			bill, err := decodeDate(row[6])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, line, err)
			}
			tx.BillDate = bill
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func loadBonds(dir, name string) ([]*Bond, error) {
	rows, err := readFileOrEmpty(dir, name)
	if err != nil {
		return nil, err
	}
	var bonds []*Bond
	for i, row := range rows {
		line := i + 2
		if len(row) < 7 {
			return nil, fmt.Errorf("%s:%d: want 7 fields, got %d", name, line, len(row))
		}
		amount, err := decodeMoney(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		rate, err := ParseRate(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		bought, err := decodeDate(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		year, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid year %q", name, line, row[4])
		}
		next, err := decodeDate(row[5])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		mature, err := strconv.ParseBool(row[6])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid maturity flag %q", name, line, row[6])
		}
		bonds = append(bonds, &Bond{
			Name:                     row[0],
			Amount:                   amount,
			Rate:                     rate,
			BoughtDate:               bought,
			Year:                     year,
			NextDateToCreditInterest: next,
			IsMature:                 mature,
		})
	}
	return bonds, nil
}

func loadCards(dir string, cards *CardList) error {
	rows, err := readFileOrEmpty(dir, cardListFilename)
	if err != nil {
		return err
	}
	for i, row := range rows {
		line := i + 2
		if len(row) < 4 {
			return fmt.Errorf("%s:%d: want 4 fields, got %d", cardListFilename, line, len(row))
		}
		limit, err := decodeMoney(row[1])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", cardListFilename, line, err)
		}
		rebate, err := ParseRate(row[2])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", cardListFilename, line, err)
		}
		c := NewCard(row[0], limit, rebate)
		c.SetID(row[3])

		unpaid, err := loadTransactions(dir, c.ID()+cardUnpaidSuffix)
		if err != nil {
			return err
		}
		c.unpaid = unpaid
		paid, err := loadTransactions(dir, c.ID()+cardPaidSuffix)
		if err != nil {
			return err
		}
		c.paid = paid

		if err := cards.Add(c); err != nil {
			return fmt.Errorf("%s:%d: %w", cardListFilename, line, err)
		}
	}
	return nil
}

func loadGoals(dir string, goals *GoalsList) error {
	rows, err := readFileOrEmpty(dir, goalListFilename)
	if err != nil {
		return err
	}
	for i, row := range rows {
		line := i + 2
		if len(row) < 6 {
			return fmt.Errorf("%s:%d: want 6 fields, got %d", goalListFilename, line, len(row))
		}
		amount, err := decodeMoney(row[1])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", goalListFilename, line, err)
		}
		target, err := decodeDate(row[2])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", goalListFilename, line, err)
		}
		done, err := strconv.ParseBool(row[4])
		if err != nil {
			return fmt.Errorf("%s:%d: invalid done flag %q", goalListFilename, line, row[4])
		}
		achieved, err := strconv.ParseBool(row[5])
		if err != nil {
			return fmt.Errorf("%s:%d: invalid achieved flag %q", goalListFilename, line, row[5])
		}
		g := NewGoal(row[0], amount, target, row[3])
		g.Done = done
		g.Achieved = achieved
		if err := goals.Add(g); err != nil {
			return fmt.Errorf("%s:%d: %w", goalListFilename, line, err)
		}
	}
	return nil
}

func loadAchievements(dir string) ([]Achievement, error) {
	rows, err := readFileOrEmpty(dir, achievementListFilename)
	if err != nil {
		return nil, err
	}
	var achievements []Achievement
	for i, row := range rows {
		line := i + 2
		if len(row) < 4 {
			return nil, fmt.Errorf("%s:%d: want 4 fields, got %d", achievementListFilename, line, len(row))
		}
		amount, err := decodeMoney(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", achievementListFilename, line, err)
		}
		on, err := decodeDate(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", achievementListFilename, line, err)
		}
		achievements = append(achievements, Achievement{
			Name:     row[0],
			Amount:   amount,
			Category: row[2],
			Date:     on,
		})
	}
	return achievements, nil
}

// decodeMoney parses a persisted amount. Blank is the zero amount, and a
// bare leading dot (".00") is accepted.
func decodeMoney(s string) (Money, error) {
	if s == "" {
		return Money{}, nil
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q", s)
	}
	return Money{value: v}, nil
}

// decodeDate parses a persisted date, blank meaning no value.
func decodeDate(s string) (date.Date, error) {
	if s == "" {
		return date.Date{}, nil
	}
	return date.Parse(s)
}
