package rentfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/jpcaulfield/rentfolio/date"
)

// This file handles importing expense histories exported by other tools
// (banking apps, spreadsheets saved as JSONL). The field layout of those
// exports varies, so the caller maps each field with a jsonpath expression.

// ExpenseMapping locates the expense fields inside one JSON line.
type ExpenseMapping struct {
	Date     string // jsonpath to the expense date, e.g. "$.date"
	Category string // jsonpath to the category; optional
	Amount   string // jsonpath to the amount (number or numeric string)
}

// DefaultExpenseMapping matches the native export layout.
var DefaultExpenseMapping = ExpenseMapping{
	Date:     "$.date",
	Category: "$.category",
	Amount:   "$.amount",
}

// ImportExpenses reads a JSONL stream and extracts one expense entry per
// line for the given property, using the mapping to locate fields. Lines
// that cannot be mapped are skipped and counted, not fatal: an export with a
// few malformed rows should still import the rest.
func ImportExpenses(r io.Reader, propertyID string, mapping ExpenseMapping) (entries []Expense, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var v any
		if err := json.Unmarshal(line, &v); err != nil {
			skipped++
			continue
		}

		e, err := mapExpense(v, propertyID, mapping)
		if err != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("cannot read expense export: %w", err)
	}
	return entries, skipped, nil
}

func mapExpense(v any, propertyID string, mapping ExpenseMapping) (Expense, error) {
	rawDate, err := jsonpath.Get(mapping.Date, v)
	if err != nil {
		return Expense{}, fmt.Errorf("date path %q: %w", mapping.Date, err)
	}
	str, ok := rawDate.(string)
	if !ok {
		return Expense{}, fmt.Errorf("date path %q: not a string", mapping.Date)
	}
	on, err := date.Parse(str)
	if err != nil {
		return Expense{}, err
	}

	category := ""
	if mapping.Category != "" {
		if rawCat, err := jsonpath.Get(mapping.Category, v); err == nil {
			category, _ = rawCat.(string)
		}
	}

	rawAmount, err := jsonpath.Get(mapping.Amount, v)
	if err != nil {
		return Expense{}, fmt.Errorf("amount path %q: %w", mapping.Amount, err)
	}
	amount, err := toAmount(rawAmount)
	if err != nil {
		return Expense{}, fmt.Errorf("amount path %q: %w", mapping.Amount, err)
	}

	return NewExpense(on, propertyID, category, M(amount, "")), nil
}

// toAmount accepts JSON numbers and numeric strings.
func toAmount(v any) (float64, error) {
	switch a := v.(type) {
	case float64:
		return a, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", a)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}
