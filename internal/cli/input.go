package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return isTerminal(int(f.Fd()))
}

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetInt reads a whole number. A blank line yields def.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer, def int) (int, error) {
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return n, nil
}

// GetMoney reads an amount written either as 1234.50 or 1.234,50. A blank
// line yields def.
func GetMoney(reader *bufio.Reader, prompt string, w io.Writer, def decimal.Decimal) (decimal.Decimal, error) {
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return decimal.Zero, err
	}
	if s == "" {
		return def, nil
	}
	return ParseMoney(s)
}

// ParseMoney accepts "1234.50", "1234,50" and "1.234,50".
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not an amount", s)
	}
	return d, nil
}

var dateLayouts = []string{"02/01/2006", "2006-01-02"}

// GetDate reads dd/mm/yyyy or yyyy-mm-dd as a UTC date. A blank line yields
// the zero time.
func GetDate(reader *bufio.Reader, prompt string, w io.Writer) (time.Time, error) {
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil || s == "" {
		return time.Time{}, err
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a date (dd/mm/yyyy)", s)
}

// GetPairs prints a prompt to w and reads "name=value" lines until an empty
// line. The raw pairs are returned in input order; parsing the values is
// left to the caller.
func GetPairs(reader *bufio.Reader, prompt string, w io.Writer) ([][2]string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(name=value, empty line to finish)\n"); err != nil {
		return nil, err
	}

	pairs := make([][2]string, 0)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%q: expected name=value", line)
		}
		pairs = append(pairs, [2]string{strings.TrimSpace(name), strings.TrimSpace(value)})
		if err != nil {
			break
		}
	}
	return pairs, nil
}

// optional returns nil for a blank answer so patches leave the field alone.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// idArg takes the id from the command line or asks for it.
func (a *App) idArg(args []string, what string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := GetSimpleText(a.reader, "Enter "+what+" id", a.prompts())
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("%s id is required", what)
	}
	return id, nil
}
