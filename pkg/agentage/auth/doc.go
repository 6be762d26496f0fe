// Package auth implements the device authorization flow against the
// agentage registry: requesting a device code, polling the token endpoint
// with the pending/slow-down error taxonomy, and a client-side expiry
// backstop.
package auth
