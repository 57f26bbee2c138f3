// Package parser turns fixed-width payment lines into domain payments.
//
// A line is accepted only when it passes both the length bounds and the
// structural pattern. Fields are then cut at fixed offsets, independently of
// the pattern groups.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kurochkinivan/payment_ingestor/internal/domain"
)

const (
	MinLineLength = 154
	MaxLineLength = 156

	byteOrderMark = "\uFEFF"
)

var (
	ErrInvalidLength   = errors.New("line length out of range")
	ErrPatternMismatch = errors.New("line does not match record pattern")
	ErrMalformedField  = errors.New("malformed field")
)

var linePattern = regexp.MustCompile(
	`^\d{12} \d{9}-\d{9}-\d{9}-\d{9}-\d{9,10} .{0,65} + \d{12} \d{1,19}\.\d{2}$`,
)

type field struct {
	name       string
	start, end int // end < 0 means up to the end of the line
}

var (
	fieldRecordNumber = field{name: "record_number", start: 0, end: 12}
	fieldPaymentID    = field{name: "payment_id", start: 13, end: 63}
	fieldCompanyName  = field{name: "company_name", start: 64, end: 129}
	fieldPayerTaxID   = field{name: "payer_tax_id", start: 130, end: 142}
	fieldAmount       = field{name: "amount", start: 143, end: -1}
)

// LineError describes a line that was rejected. It is the only kind of error
// ParseLine returns.
type LineError struct {
	Line string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("invalid line %q: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Clean strips byte order marks and surrounding whitespace.
func Clean(line string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, byteOrderMark, ""))
}

// ParseLine parses a single line into a payment with status OK.
func ParseLine(line, fileName string) (*domain.Payment, error) {
	line = Clean(line)

	if n := utf8.RuneCountInString(line); n < MinLineLength || n > MaxLineLength {
		return nil, &LineError{Line: line, Err: fmt.Errorf("%w: got %d, want [%d;%d]", ErrInvalidLength, n, MinLineLength, MaxLineLength)}
	}

	if !linePattern.MatchString(line) {
		return nil, &LineError{Line: line, Err: ErrPatternMismatch}
	}

	p, err := extract(line)
	if err != nil {
		return nil, &LineError{Line: line, Err: err}
	}

	p.Status = domain.StatusOK
	p.FileName = fileName

	return p, nil
}

func extract(line string) (*domain.Payment, error) {
	var (
		p     domain.Payment
		err   error
		runes = []rune(line)
	)

	for _, f := range []struct {
		field field
		dst   *string
	}{
		{fieldRecordNumber, &p.RecordNumber},
		{fieldPaymentID, &p.PaymentID},
		{fieldCompanyName, &p.CompanyName},
		{fieldPayerTaxID, &p.PayerTaxID},
	} {
		if *f.dst, err = slice(runes, f.field); err != nil {
			return nil, err
		}
	}

	raw, err := slice(runes, fieldAmount)
	if err != nil {
		return nil, err
	}

	p.Amount, err = domain.ParseAmount(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedField, fieldAmount.name, err)
	}

	return &p, nil
}

// slice cuts by character offsets, not bytes.
func slice(line []rune, f field) (string, error) {
	end := f.end
	if end < 0 {
		end = len(line)
	}

	if f.start > len(line) || end > len(line) {
		return "", fmt.Errorf("%w: %s: range [%d:%d) exceeds line length %d", ErrMalformedField, f.name, f.start, end, len(line))
	}

	return strings.TrimSpace(string(line[f.start:end])), nil
}
