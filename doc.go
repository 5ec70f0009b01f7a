// Package rentfolio manages a rental real-estate investment portfolio: the
// properties, their mortgages, leases and expense history, and the financial
// metrics derived from them (NOI, cap rate, DSCR, cash-on-cash return, LTV,
// IRR).
//
// The calculation core is pure and deterministic: every date-dependent
// figure takes an explicit evaluation date, and degenerate or missing input
// resolves to documented fallback values rather than errors. Records are
// kept in an append-only JSONL ledger replayed into Property values.
package rentfolio
