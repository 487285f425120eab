// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "pwaudit/internal/domain/entity"

// Digester produces the digest a password is looked up by.
// The algorithm is fixed by the breach corpus's index format (SHA-1); a
// different hash would require a different remote protocol.
type Digester interface {
	// Digest is total and deterministic: any string, including "", yields a
	// DigestLen-character uppercase hex digest.
	Digest(password string) entity.Digest
}
