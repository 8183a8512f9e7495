// Package puzzle loads puzzle documents (JSON or YAML) into boards.
//
// The loader is an external collaborator of the deduction engine: the
// engine only ever sees a constructed Board. Documents are validated
// against an embedded CUE schema before any field is interpreted, so
// shape errors surface with schema positions instead of partial
// boards.
//
// Every document gets a content-addressed fingerprint (canonical JSON,
// NFC-normalized strings, domain-separated SHA-256) that the trace
// store uses to correlate solve runs of the same puzzle.
package puzzle
