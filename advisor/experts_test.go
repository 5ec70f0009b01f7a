package advisor

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpcaulfield/rentfolio"
	"github.com/jpcaulfield/rentfolio/date"
	"google.golang.org/genai"
)

func testLedger(t *testing.T) string {
	t.Helper()
	pf := rentfolio.NewPortfolio()
	err := pf.Append(
		rentfolio.NewDeclare(date.New(2020, 1, 1), "elm-12", "12 Elm Street", "USD", rentfolio.M(400000, "USD"), rentfolio.Money{}, rentfolio.Money{}, 0),
		rentfolio.NewLease(date.New(2022, 1, 1), "elm-12", "unit-a", rentfolio.M(2500, "USD"), date.Date{}),
	)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "properties.jsonl")
	if err := rentfolio.SavePortfolio(path, pf); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate(map[string]any{}); err != nil {
		t.Errorf("missing date must default to today, got %v", err)
	}
	on, err := parseDate(map[string]any{"date": "2024-12-31"})
	if err != nil || on != date.New(2024, 12, 31) {
		t.Errorf("parseDate = %v, %v", on, err)
	}
	if _, err := parseDate(map[string]any{"date": "not a date"}); err == nil {
		t.Error("garbage date must fail")
	}
	if _, err := parseDate(map[string]any{"date": 42}); err == nil {
		t.Error("non-string date must fail")
	}
}

func TestListProperties(t *testing.T) {
	f := listProperties(testLedger(t))
	resp := f.Call(context.Background(), "call-1", map[string]any{"date": "2024-12-31"})

	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("response = %v", resp.Response)
	}
	if !strings.Contains(out, "12 Elm Street") {
		t.Errorf("summary missing the property:\n%s", out)
	}
}

func TestPropertyReport(t *testing.T) {
	f := propertyReport(testLedger(t))

	resp := f.Call(context.Background(), "call-1", map[string]any{"property": "elm-12", "date": "2024-12-31"})
	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("response = %v", resp.Response)
	}
	if !strings.Contains(out, "## Ratios") {
		t.Errorf("report missing ratios:\n%s", out)
	}

	resp = f.Call(context.Background(), "call-2", map[string]any{"property": "ghost"})
	if _, hasErr := resp.Response["error"]; !hasErr {
		t.Error("unknown property must report an error")
	}
}

func TestNewLibrary_UnknownFunction(t *testing.T) {
	lib := NewLibrary([]Function{listProperties(testLedger(t))})
	resp := lib(context.Background(), &genai.FunctionCall{ID: "x", Name: "no_such_tool"})
	if _, hasErr := resp.Response["error"]; !hasErr {
		t.Error("unknown function must report an error")
	}
}
