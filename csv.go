package finbook

import "strings"

// This file implements the delimited-text tokenizer. It deliberately does not
// use encoding/csv: the historical format tolerated by this system is more
// permissive (unterminated quotes swallow the rest of the input, blank lines
// vanish, short rows are padded) and that behavior must be preserved
// bit-for-bit for compatibility with previously accepted files.

// Record is a single data row keyed by its trimmed header cell names.
type Record map[string]string

// SplitRows scans text into raw rows of raw fields, honoring quoting.
//
// Outside quotes a comma ends the field, a newline ends the row, '\r' is
// dropped and '"' enters quoted mode. Inside quotes a doubled '""' decodes to
// a literal quote, a lone '"' exits quoted mode, and everything else,
// including commas and newlines, is carried literally. A row consisting of a
// single empty field (a blank line artifact) is dropped. Input with no
// trailing newline still flushes its last row. An unterminated quote is not
// an error: the remainder of the input is treated as quoted content.
func SplitRows(text string) [][]string {
	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	pushField := func() {
		row = append(row, field.String())
		field.Reset()
	}

	for i := 0; i < len(text); {
		c := text[i]
		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i += 2
					continue
				}
				inQuotes = false
				i++
				continue
			}
			field.WriteByte(c)
			i++
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case ',':
			pushField()
		case '\n':
			pushField()
			if len(row) == 1 && row[0] == "" {
				row = nil
				break
			}
			rows = append(rows, row)
			row = nil
		case '\r':
			// silently dropped
		default:
			field.WriteByte(c)
		}
		i++
	}
	if field.Len() > 0 || len(row) > 0 {
		pushField()
		rows = append(rows, row)
	}
	return rows
}

// ParseCSV tokenizes text and zips every data row against the header row.
//
// The first row is the header; header cells are trimmed and used as field
// keys. Data cells are trimmed, missing trailing cells default to the empty
// string, and rows whose cells are all empty or whitespace-only are
// discarded.
func ParseCSV(text string) []Record {
	rows := SplitRows(text)
	if len(rows) == 0 {
		return nil
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	var records []Record
	for _, row := range rows[1:] {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}
		rec := make(Record, len(header))
		for i, h := range header {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			rec[h] = strings.TrimSpace(cell)
		}
		records = append(records, rec)
	}
	return records
}
