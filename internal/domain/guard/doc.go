// Package guard holds the domain services that enforce invariants spanning
// more than one entity. Each guard depends on a narrow existence port and
// propagates port failures unchanged.
package guard
