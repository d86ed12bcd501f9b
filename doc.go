// Package splitter settles expenses shared by a group of people.
//
// A group registers its participants once, then records expenses in a
// Ledger: who paid, how much, for what, and who shares it. The ledger is the
// single source of truth, everything else is recomputed from it:
//   - ComputeBalances gives each participant's net balance, what they paid
//     minus their share of every expense they take part in.
//   - Plan turns balances into the transfers that settle every debt.
//   - GetReport bundles both for display.
//
// Amounts are exact decimals. Shares are never rounded while they accumulate;
// each balance is rounded once to the currency minor unit, and the rounding
// leftovers are redistributed so that balances always sum to zero.
//
// Session wraps a ledger for callers that need an explicit, lockable session
// object. Ledgers can be read from and written to JSONL streams.
//
// This package serves as the foundational logic for the `split` command-line
// tool.
package splitter
