// Package auth implements the optional credential gate in front of the
// generation pipeline. Credentials come from an injected Provider rather
// than a process-wide store; the config-backed provider reads the
// [auth.users] table. A successful check yields a Session whose token tags
// history rows for that invocation.
package auth
