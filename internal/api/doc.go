// Package api contains the HTTP handlers, request/response models, and
// error mapping for the task board service. Handlers catch their own
// failures and translate them locally; only truly unhandled panics reach
// the router's recovery middleware.
package api
