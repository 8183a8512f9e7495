// Package store provides SQLite-backed durable storage for solve
// traces.
//
// Each solve run is recorded as:
//   - Runs: one row per solve invocation (outcome, tier metadata,
//     difficulty score, final grid)
//   - Firings: the ordered rule log for the run
//   - Probes: tier-5 contradiction conclusions, in commit order
//
// # Critical Patterns
//
// CP-1: Run-Level Idempotency
//   - Run IDs are UUIDs minted at record time
//   - Re-writing an existing run ID is a no-op (ON CONFLICT DO NOTHING)
//
// CP-2: Logical Ordering
//   - Firings and probes order by seq INTEGER, never timestamps
//   - Replaying a trace reads back in exactly the commit order
//
// CP-3: Deterministic Query Results
//   - Listing queries order by created_at, then id COLLATE BINARY
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Runs correlate across sessions via the puzzle fingerprint computed
// in internal/puzzle (canonical JSON, domain-separated SHA-256).
package store
