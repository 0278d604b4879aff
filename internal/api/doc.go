// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts HTTP concerns to the application
// services: auth, AI content generation, flashcard review, and the credit
// ledger.
package api
