// Package fintrack provides the types and operations for tracking a
// personal financial profile. It is designed to be local-first and
// auditable, keeping the full state in plain CSV files the user owns.
//
// The core functionalities include:
//   - Bank Accounts: Savings accounts with a monthly income schedule and
//     recurring expenditures, and investment accounts holding bonds that
//     pay interest semi-annually until maturity.
//   - Credit Cards: Unpaid and paid expenditure lists per card, with an
//     advisory monthly spend limit and a cashback rebate credited when a
//     monthly bill is closed.
//   - Transactions: Expenditures and deposits, editable and deletable by
//     their listed position, always keeping balances non-negative.
//   - Goals: Savings targets, optionally linked to a savings account and
//     marked achieved when the balance reaches the target in time.
//   - Data Persistence: Encoding and decoding of the whole profile to and
//     from human-readable CSV files.
//
// This package serves as the foundational logic for the `fin`
// command-line tool.
package fintrack
