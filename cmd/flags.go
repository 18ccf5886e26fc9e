package cmd

import (
	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
)

// Optional flag parsing: a blank flag value means "not provided".

func optMoney(s string) (*fintrack.Money, error) {
	if s == "" {
		return nil, nil
	}
	m, err := fintrack.ParseMoney(s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func optRate(s string) (*fintrack.Rate, error) {
	if s == "" {
		return nil, nil
	}
	r, err := fintrack.ParseRate(s)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func optDate(s string) (*date.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// dateOrToday parses the flag value, defaulting to today when blank.
func dateOrToday(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// deref unwraps an optional date, zero when absent.
func deref(d *date.Date) date.Date {
	if d == nil {
		return date.Date{}
	}
	return *d
}
