// Package order models the order aggregate and its status ledger.
//
// An Order (header plus immutable lines with captured prices) is
// deliberately transient: it is deleted at successful payment so a
// settlement can never run twice. Everything that happens after payment
// (shipping, receipt, history queries) operates on the append-only
// StatusEvent ledger, whose latest event by (timestamp, sequence) defines
// the order's current Status.
package order
