// Package csvimport parses bank statement CSV exports into import rows.
// Column roles are detected from the header line, so exports from different
// banks work without per-bank configuration.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// MaxFileSize bounds the bytes read from an upload.
const MaxFileSize = 10 << 20

// DateLayouts are tried in order. Day-first wins for ambiguous dates such
// as 03/04/2025.
var DateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02.01.2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type role int

const (
	roleDate role = iota
	roleDescription
	roleAmount
	roleDebit
	roleCredit
	roleCurrency
	roleCategory
	roleType
)

var headerAliases = map[string]role{
	"date":               roleDate,
	"transaction date":   roleDate,
	"posted date":        roleDate,
	"posting date":       roleDate,
	"booking date":       roleDate,
	"value date":         roleDate,
	"created on":         roleDate,
	"description":        roleDescription,
	"memo":               roleDescription,
	"payee":              roleDescription,
	"details":            roleDescription,
	"narrative":          roleDescription,
	"merchant":           roleDescription,
	"name":               roleDescription,
	"reference":          roleDescription,
	"amount":             roleAmount,
	"value":              roleAmount,
	"transaction amount": roleAmount,
	"debit":              roleDebit,
	"withdrawal":         roleDebit,
	"withdrawals":        roleDebit,
	"money out":          roleDebit,
	"paid out":           roleDebit,
	"outflow":            roleDebit,
	"credit":             roleCredit,
	"deposit":            roleCredit,
	"deposits":           roleCredit,
	"money in":           roleCredit,
	"paid in":            roleCredit,
	"inflow":             roleCredit,
	"currency":           roleCurrency,
	"ccy":                roleCurrency,
	"category":           roleCategory,
	"type":               roleType,
	"transaction type":   roleType,
}

// Result is a parsed file. Rows and Errors are ordered by line.
type Result struct {
	Columns []string
	Rows    []ports.ImportRow
	Errors  []ports.ImportRowError
}

// columns maps each detected role to its column index.
type columns map[role]int

func (c columns) get(record []string, r role) string {
	i, ok := c[r]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// Parse reads a CSV export. Rows that cannot be used are reported in
// Result.Errors and parsing continues. The returned error is non-nil only
// when the file as a whole is unusable. defaultCurrency applies to rows
// without a currency column.
func Parse(r io.Reader, defaultCurrency string) (*Result, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(raw) > MaxFileSize {
		return nil, domain.NewValidationError("file", fmt.Sprintf("must be at most %d bytes", MaxFileSize))
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, domain.NewValidationError("file", "is empty")
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = sniffDelimiter(raw)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	// Leading-space trimming would swallow empty tab-separated fields.
	reader.TrimLeadingSpace = reader.Comma != '\t'

	header, err := reader.Read()
	if err != nil {
		return nil, domain.NewValidationError("file", "has no header line")
	}
	cols, err := detectColumns(header)
	if err != nil {
		return nil, err
	}

	res := &Result{Columns: trimAll(header)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var line int
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			res.Errors = append(res.Errors, ports.ImportRowError{Line: line, Message: err.Error()})
			continue
		}
		if blank(record) {
			continue
		}
		line, _ := reader.FieldPos(0)

		row, err := parseRecord(record, cols, defaultCurrency)
		if err != nil {
			res.Errors = append(res.Errors, ports.ImportRowError{Line: line, Message: err.Error()})
			continue
		}
		row.Line = line
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

func detectColumns(header []string) (columns, error) {
	cols := make(columns)
	for i, h := range header {
		r, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, taken := cols[r]; !taken {
			cols[r] = i
		}
	}

	missing := make(map[string]string)
	if _, ok := cols[roleDate]; !ok {
		missing["date"] = "no date column found"
	}
	if _, ok := cols[roleDescription]; !ok {
		missing["description"] = "no description, memo or payee column found"
	}
	_, hasAmount := cols[roleAmount]
	_, hasDebit := cols[roleDebit]
	_, hasCredit := cols[roleCredit]
	if !hasAmount && !hasDebit && !hasCredit {
		missing["amount"] = "no amount or debit/credit column found"
	}
	if err := domain.FieldsError(missing); err != nil {
		return nil, err
	}
	return cols, nil
}

func parseRecord(record []string, cols columns, defaultCurrency string) (ports.ImportRow, error) {
	var row ports.ImportRow

	date, err := ParseDate(cols.get(record, roleDate))
	if err != nil {
		return row, err
	}
	row.Date = date

	row.Description = cols.get(record, roleDescription)
	if row.Description == "" {
		return row, errors.New("description is empty")
	}

	signed, err := signedAmount(record, cols)
	if err != nil {
		return row, err
	}
	if signed.IsZero() {
		return row, errors.New("amount is zero")
	}
	row.Amount = signed.Abs()
	row.Type = transaction.TypeIncome
	if signed.IsNegative() {
		row.Type = transaction.TypeExpense
	}
	if t, ok := parseType(cols.get(record, roleType)); ok {
		row.Type = t
	}

	currency := cols.get(record, roleCurrency)
	if currency == "" {
		currency = defaultCurrency
	}
	row.Currency, err = domain.NormalizeCurrency(currency)
	if err != nil {
		return row, fmt.Errorf("currency %q: must be a 3-letter ISO 4217 code", currency)
	}

	row.Category = cols.get(record, roleCategory)
	return row, nil
}

// signedAmount is positive for money in. A debit column counts as money
// out whatever its sign.
func signedAmount(record []string, cols columns) (decimal.Decimal, error) {
	if s := cols.get(record, roleAmount); s != "" {
		return ParseAmount(s)
	}
	if s := cols.get(record, roleDebit); s != "" {
		d, err := ParseAmount(s)
		if err != nil {
			return decimal.Zero, err
		}
		if !d.IsZero() {
			return d.Abs().Neg(), nil
		}
	}
	if s := cols.get(record, roleCredit); s != "" {
		d, err := ParseAmount(s)
		if err != nil {
			return decimal.Zero, err
		}
		return d.Abs(), nil
	}
	return decimal.Zero, errors.New("amount is empty")
}

// ParseDate parses s with the first matching layout in DateLayouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("date is empty")
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("date %q: unrecognized format", s)
}

// ParseAmount parses bank-formatted numbers: currency symbols, thousands
// separators, decimal commas, trailing minus and accounting parentheses.
func ParseAmount(s string) (decimal.Decimal, error) {
	orig := s
	s = strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasSuffix(s, "-") {
		negative = true
		s = strings.TrimSuffix(s, "-")
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case r == '-':
			negative = !negative
		}
	}
	num := normalizeSeparators(b.String())
	if num == "" {
		return decimal.Zero, fmt.Errorf("amount %q: not a number", orig)
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: not a number", orig)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// normalizeSeparators rewrites s to use '.' as the only decimal separator.
// With both separators present the last one is decimal; a lone comma is
// decimal only when followed by one or two digits.
func normalizeSeparators(s string) string {
	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 <= 2 {
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ".") > 1:
		return strings.ReplaceAll(s, ".", "")
	default:
		return s
	}
}

func parseType(s string) (transaction.Type, bool) {
	switch strings.ToLower(s) {
	case "income", "credit", "cr", "deposit", "in":
		return transaction.TypeIncome, true
	case "expense", "debit", "dr", "withdrawal", "out", "payment":
		return transaction.TypeExpense, true
	default:
		return "", false
	}
}

// sniffDelimiter picks the most frequent of ',', ';' and tab on the header line.
func sniffDelimiter(raw []byte) rune {
	first := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		first = raw[:i]
	}
	best, bestCount := ',', bytes.Count(first, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(first, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
