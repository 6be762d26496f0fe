// Package client implements the HTTP client for the agentage registry,
// with services for the agent catalog and the authenticated session, typed
// API errors with per-field validation details, and correlation-ID
// tracing.
package client
