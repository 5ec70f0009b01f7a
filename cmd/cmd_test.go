package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// createTempLedger writes content to a throwaway ledger file and points the
// global ledger flag at it for the duration of the test.
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "properties.jsonl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp ledger: %v", err)
	}

	oldLedgerFile := ledgerFile
	ledgerFile = &path
	t.Cleanup(func() { ledgerFile = oldLedgerFile })
	return path
}

func execute(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestDeclare_AppendsToLedger(t *testing.T) {
	path := createTempLedger(t, "")

	status := execute(t, &declareCmd{},
		"-id", "elm-12", "-name", "12 Elm Street", "-price", "400000", "-d", "2020-01-01")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"command":"declare"`, `"property":"elm-12"`, `"purchasePrice":400000`} {
		if !strings.Contains(string(content), want) {
			t.Errorf("ledger missing %q:\n%s", want, content)
		}
	}
}

func TestDeclare_RequiresIDAndPrice(t *testing.T) {
	createTempLedger(t, "")
	if status := execute(t, &declareCmd{}, "-id", "elm-12"); status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError without a price, got %v", status)
	}
}

func TestExpense_UnknownPropertyRejected(t *testing.T) {
	path := createTempLedger(t, "")

	status := execute(t, &expenseCmd{},
		"-p", "ghost", "-category", "Repairs", "-amount", "50", "-d", "2024-02-01")
	if status != subcommands.ExitFailure {
		t.Fatalf("Expected ExitFailure, got %v", status)
	}
	// The invalid entry must not reach the ledger.
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(strings.TrimSpace(string(content))) != 0 {
		t.Errorf("ledger should stay empty, got:\n%s", content)
	}
}

func TestFmt_SortsLedger(t *testing.T) {
	original := `{"command":"declare","property":"a","date":"2024-01-01","purchasePrice":100000}
{"command":"expense","property":"a","date":"2024-06-01","category":"Repairs","amount":50}
{"command":"set-value","property":"a","date":"2024-03-01","value":120000}
`
	path := createTempLedger(t, original)

	if status := execute(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("formatted ledger has %d lines, want 3:\n%s", len(lines), content)
	}
	// set-value (March) now precedes the expense (June).
	if !strings.Contains(lines[1], `"set-value"`) || !strings.Contains(lines[2], `"expense"`) {
		t.Errorf("entries not in chronological order:\n%s", content)
	}
}

func TestMortgage_BadFrequencyRejected(t *testing.T) {
	createTempLedger(t, `{"command":"declare","property":"a","date":"2024-01-01","purchasePrice":100000}`+"\n")

	status := execute(t, &mortgageCmd{},
		"-p", "a", "-amount", "80000", "-rate", "0.05", "-years", "25", "-freq", "hourly")
	if status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError, got %v", status)
	}
}

func TestLease_EndToEnd(t *testing.T) {
	path := createTempLedger(t, `{"command":"declare","property":"a","date":"2024-01-01","purchasePrice":100000}`+"\n")

	status := execute(t, &leaseCmd{},
		"-p", "a", "-tenant", "unit-a", "-rent", "1500", "-d", "2024-02-01")
	if status != subcommands.ExitSuccess {
		t.Fatalf("lease: expected ExitSuccess, got %v", status)
	}
	status = execute(t, &endLeaseCmd{},
		"-p", "a", "-tenant", "unit-a", "-d", "2024-11-30")
	if status != subcommands.ExitSuccess {
		t.Fatalf("end-lease: expected ExitSuccess, got %v", status)
	}

	pf, err := loadPortfolio()
	if err != nil {
		t.Fatal(err)
	}
	leases := pf.Property("a").Tenants
	if len(leases) != 1 || leases[0].Active() {
		t.Errorf("lease not closed after end-lease: %v (ledger %s)", leases, path)
	}
}
