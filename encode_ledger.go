package finbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The collections round-trip through JSONL: one record per line, human
// readable, easy to diff and merge.

// EncodeLedger encodes the ledger's transactions to w, one JSON object per
// line, in stored order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for tx := range l.Transactions() {
		data, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("cannot marshal transaction: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write ledger: %w", err)
		}
	}
	return nil
}

// DecodeLedger decodes a JSONL stream of transactions, skipping blank lines.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", string(line), err)
		}
		ledger.transactions = append(ledger.transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeRoster encodes the roster's employees to w, one JSON object per
// line, in roster order.
func EncodeRoster(w io.Writer, r *Roster) error {
	for e := range r.Employees() {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("cannot marshal employee: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write roster: %w", err)
		}
	}
	return nil
}

// DecodeRoster decodes a JSONL stream of employees, skipping blank lines.
func DecodeRoster(r io.Reader) (*Roster, error) {
	roster := NewRoster()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Employee
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("cannot parse roster line %q: %w", string(line), err)
		}
		roster.employees = append(roster.employees, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read roster: %w", err)
	}
	return roster, nil
}
