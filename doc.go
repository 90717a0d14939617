// Package finbook turns loosely-structured tabular financial data into a
// canonical, query-able financial model. It ingests transaction ledgers and
// employee rosters supplied as delimited text and derives running balance,
// per-category totals, monthly income/expense rollups, and per-employee
// payroll dues for the current period.
//
// The core functionalities include:
//   - Tokenizing: recovering structured rows from delimited text with
//     quoting rules, without ever failing on malformed input.
//   - Normalizing: reconciling inconsistent column naming onto two canonical
//     record shapes (Transaction and Employee) and inferring missing
//     semantic fields from the ones present.
//   - Classifying: deciding, when a single table is supplied, whether it is
//     an employee roster or a transaction ledger.
//   - Aggregating: a stateless engine deriving balance, category ledger,
//     monthly rollup, trailing window and payroll-dues views from the
//     normalized collections.
//   - Data Persistence: encoding and decoding the collections to and from a
//     human-readable JSONL format behind a small string-keyed store.
//
// Everything in this package degrades to documented defaults rather than
// raising errors: unparseable amounts become zero, unparseable dates become
// unknown, unrecognized types are inferred from the amount's sign. This
// package serves as the foundational logic for the `fbk` command-line tool.
package finbook
