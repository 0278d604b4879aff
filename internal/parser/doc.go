// Package parser turns untrusted LLM response text into validated domain
// objects. Every task type has its own extraction routine and its own
// deterministic fallback, so the pipeline never hands an empty or malformed
// result back to the caller: the contract is "always return something
// usable", never "throw".
//
// Quiz responses are parsed line-by-line from numbered question markers.
// JSON-embedded responses (flashcards, grading, mind maps) go through a
// uniform three-tier strategy: strict parse of the whole text, then the
// substring between the first '{' and the last '}' (tolerating the prose
// preambles and postambles instruction-following models like to add), then
// a synthetic task-specific fallback.
//
// Parsing is pure and idempotent. It validates shape, not truth; a question
// that parses cleanly is not thereby factually correct.
package parser
