// Package domain defines the core business entities and errors.
//
// Entities are created through constructor functions that validate their
// invariants; anything that mutates review scheduling state lives in the
// srs subpackage and returns new values rather than modifying in place.
package domain
