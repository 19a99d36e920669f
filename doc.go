// Package costbasis computes the tax cost basis of asset disposals using
// LIFO (Last-In, First-Out) lot matching.
//
// The core of the package is the [Ledger]: a stack of still-held lots for a
// single asset. Acquisitions push a new lot on the stack; disposals are
// matched against the most recently acquired lots first, reporting exactly
// which lots were consumed, in what quantities, and at what original unit
// cost. That matching is the raw material for realized gain/loss reporting.
//
// Around the core, the package provides:
//   - Exact decimal types: [Amount] for quantities and [Price] for unit
//     costs, so matching never suffers from floating point drift.
//   - A [Book] that indexes one ledger per asset and replays a full
//     transaction history into [Disposal] records.
//   - A JSONL codec for transaction files, with a canonical field order so
//     files and diagnostics are reproducible across runs.
//
// This package is the foundational logic for the `cbs` command-line tool.
package costbasis
