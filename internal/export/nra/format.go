// Package nra writes the fixed-width VAT files accepted by the National
// Revenue Agency: PRODAGBI.TXT, POKUPKI.TXT and DEKLAR.TXT.
package nra

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	SalesFileName       = "PRODAGBI.TXT"
	PurchasesFileName   = "POKUPKI.TXT"
	DeclarationFileName = "DEKLAR.TXT"

	lineEnding = "\r\n"
	dateLayout = "02/01/2006"
	dateWidth  = 10
)

// lineWriter encodes lines to Windows-1251. Runes the code page cannot hold
// are replaced, so every character stays one byte wide.
type lineWriter struct {
	tw *transform.Writer
}

func newLineWriter(w io.Writer) *lineWriter {
	enc := encoding.ReplaceUnsupported(charmap.Windows1251.NewEncoder())
	return &lineWriter{tw: transform.NewWriter(w, enc)}
}

func (l *lineWriter) writeLine(fields ...string) error {
	_, err := io.WriteString(l.tw, strings.Join(fields, "")+lineEnding)
	return err
}

// Close flushes buffered bytes. The underlying writer stays open.
func (l *lineWriter) Close() error {
	return l.tw.Close()
}

// text left-aligns s in a field of width characters, cutting what does not fit.
func text(s string, width int) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	s = strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
	if utf8.RuneCountInString(s) > width {
		s = string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
}

// number right-aligns d with a fixed number of decimals. A value wider than
// the field is an error rather than a silently cut amount.
func number(d decimal.Decimal, width int, places int32) (string, error) {
	s := d.StringFixed(places)
	if len(s) > width {
		return "", fmt.Errorf("nra: %s does not fit in %d characters", s, width)
	}
	return strings.Repeat(" ", width-len(s)) + s, nil
}

func count(n int, width int) (string, error) {
	return number(decimal.NewFromInt(int64(n)), width, 0)
}

func date(t time.Time) string {
	if t.IsZero() {
		return strings.Repeat(" ", dateWidth)
	}
	return t.Format(dateLayout)
}
