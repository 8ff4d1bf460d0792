// Package kernel contains the shared value objects of the domain model:
// UUID (order-identity uniqueness token), Money (non-negative amount in the
// smallest currency unit), Timestamp (millisecond wall-clock instant) and
// ConstructorGuard (constructor enforcement for domain objects).
//
// Kernel types are immutable, validated at construction, and free of any
// persistence or transport concerns.
package kernel
