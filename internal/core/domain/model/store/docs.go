// Package store models the seller side of the catalog: the Store aggregate
// (identity plus immutable owner) and its InventoryLine records (per-item
// stock, captured price and denormalized search attributes).
//
// Stock counts obey a single invariant: they never go negative. The domain
// model only observes stock; the binding mutations are the conditional
// atomic increment/decrement operations exposed by the inventory
// repository.
package store
