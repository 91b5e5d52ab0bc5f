// Package financeai provides the core logic for a local-first personal
// finance tracker. It is designed to keep the user's data on their own
// machine, in human-readable records, while offering the derived metrics a
// finance dashboard needs.
//
// The core functionalities include:
//   - Domain Model: plain records for income/expense transactions, savings
//     goals and investment holdings, with local validation.
//   - Persistence Store: an injectable state container owning the three
//     collections, loading them from durable JSON records at startup and
//     persisting the full collection on every mutation.
//   - Aggregation Engine: stateless derivations over the raw transaction
//     collection (monthly summary, daily series, six-month trend, category
//     breakdown, goal progress, investment returns), deterministic given
//     the same input and reference date.
//   - Statement Import: mapping of arbitrary bank-export JSON into
//     transactions through configurable jsonpath expressions.
//
// This package serves as the foundational logic for the `fai` command-line
// tool; the AI forecasting client lives in the predict subpackage.
package financeai
