// Package store provides SQLite-backed history for calspan CLI computations.
//
// The store is an append-only log of computations: the input expression,
// the operation performed, the result, and the normalization policy in
// effect. Ordering uses a seq INTEGER logical position, never timestamps,
// so listings are deterministic regardless of wall time.
//
// Database configuration:
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
