// Package service provides application-level services that orchestrate the
// domain, storage, and provider layers.
//
// The central piece is AIService, which runs every AI-backed action through
// the same pipeline: validate the input, compute the action's credit cost,
// debit the user's balance, call the text-generation provider, parse the
// response into a typed result, and persist whatever the action produced.
// A failed debit short-circuits the pipeline before any provider call; a
// failed provider call surfaces as an error without refunding the debit.
package service
