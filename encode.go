package rentfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpcaulfield/rentfolio/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeEntry writes a single ledger entry as one JSONL line.
func EncodeEntry(w io.Writer, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cannot marshal %s entry: %w", e.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write %s entry: %w", e.What(), err)
	}
	return nil
}

// EncodePortfolio writes the whole ledger in JSONL, one entry per line.
func EncodePortfolio(w io.Writer, pf *Portfolio) error {
	for _, e := range pf.Entries() {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodePortfolio reads a JSONL stream of ledger entries, decodes each line
// into the matching entry struct, and replays them into a Portfolio.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	pf := NewPortfolio()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		e, err := decodeEntry(line)
		if err != nil {
			return nil, err
		}
		if err := pf.Append(e); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return pf, nil
}

func decodeEntry(line []byte) (Entry, error) {
	var identifier struct {
		Command EntryType `json:"command"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify command in line %q: %w", string(line), err)
	}

	var decoded Entry
	var err error
	switch identifier.Command {
	case CmdDeclare:
		var e Declare
		err = json.Unmarshal(line, &e)
		decoded = e
	case CmdSetValue:
		var e SetValue
		err = json.Unmarshal(line, &e)
		decoded = e
	case CmdSetRent:
		var e SetRent
		err = json.Unmarshal(line, &e)
		decoded = e
	case CmdMortgage:
		var e SetMortgage
		err = json.Unmarshal(line, &e)
		decoded = e
	case CmdLease:
		// The lease end is either a date, empty, or the literal "Active"
		// kept for compatibility with exports from other tools.
		var temp struct {
			baseEntry
			Tenant string          `json:"tenant"`
			Rent   Money           `json:"rent"`
			End    json.RawMessage `json:"end"`
		}
		if err = json.Unmarshal(line, &temp); err != nil {
			break
		}
		e := Lease{baseEntry: temp.baseEntry, Tenant: temp.Tenant, Rent: temp.Rent}
		e.End, err = parseLeaseEnd(temp.End)
		decoded = e
	case CmdEndLease:
		var e EndLease
		err = json.Unmarshal(line, &e)
		decoded = e
	case CmdExpense:
		var e Expense
		err = json.Unmarshal(line, &e)
		decoded = e
	default:
		return nil, fmt.Errorf("unsupported command %q in line %q", identifier.Command, string(line))
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s entry %q: %w", identifier.Command, string(line), err)
	}
	return decoded, nil
}

// parseLeaseEnd reads a lease end that is a date string, empty, absent, or
// the sentinel "Active" meaning the lease is still running.
func parseLeaseEnd(raw json.RawMessage) (date.Date, error) {
	if len(raw) == 0 {
		return date.Date{}, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return date.Date{}, err
	}
	if s == "" || strings.EqualFold(s, "active") {
		return date.Date{}, nil
	}
	return date.Parse(s)
}

// LoadPortfolio reads the ledger file at path. A missing file yields an
// empty portfolio, so a fresh working directory just works.
func LoadPortfolio(path string) (*Portfolio, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", path, err)
	}
	defer f.Close()
	pf, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ledger %q: %w", path, err)
	}
	return pf, nil
}

// SavePortfolio writes the whole ledger to path atomically (write to a
// temporary file, then rename).
func SavePortfolio(path string, pf *Portfolio) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ledger-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary ledger: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodePortfolio(tmp, pf); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temporary ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot replace ledger %q: %w", path, err)
	}
	return nil
}

// AppendEntry appends a single entry to the ledger file at path, creating
// the file if needed.
func AppendEntry(path string, e Entry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open ledger %q: %w", path, err)
	}
	defer f.Close()
	return EncodeEntry(f, e)
}
