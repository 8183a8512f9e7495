// Package solver drives the tier-escalation loop over the deduction
// rule library and produces the final solve result.
//
// ARCHITECTURE:
//
// Single-Threaded Deduction Loop:
// The solver owns the one live board exclusively and mutates it from a
// single goroutine with no suspension points. This ensures:
// - Predictable rule evaluation order
// - A reproducible firing log for identical inputs
// - Simple reasoning about progress
//
// Escalate-And-Restart Control Flow:
// 1. Try tier 1's rules in registry order; apply the first non-empty
//    assignment set and restart from tier 1.
// 2. If a whole tier yields nothing, escalate to the next tier.
// 3. If tier 5 (contradiction probing) yields nothing, stop stuck.
// 4. Stop solved as soon as no unknown cells remain and the
//    consistency checker approves.
//
// The loop is an explicit cursor, not recursion: a restart is an O(1)
// state reset. Termination needs no external bound because every
// applied firing strictly decreases the unknown-cell count, capping
// the loop at one restart per cell; the solver still carries a ceiling
// and reports the restarts taken so callers can assert the bound.
//
// DETERMINISM:
// No randomness, no wall clock, no map-order dependence anywhere in
// the loop. Identical inputs yield identical firing sequences and
// identical results.
package solver
