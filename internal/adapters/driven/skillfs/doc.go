// Package skillfs loads a candidate skill directory from disk into the
// in-memory tree the validator and packager operate on. Loading is a
// read-only pass with deterministic traversal order.
package skillfs
