// Package postgres provides PostgreSQL implementations of the store
// interfaces, including the atomic credit ledger operations.
package postgres
