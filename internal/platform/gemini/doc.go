// Package gemini implements the llm.Client interface on top of Google's
// Gemini API.
//
// This package is an infrastructure adapter: it translates between the
// application's provider-neutral completion requests and the Gemini API
// without exposing the details of the external service to the core
// application. Provider failures are normalized to the sentinel errors in
// the llm package so callers can classify them without knowing the provider.
package gemini
