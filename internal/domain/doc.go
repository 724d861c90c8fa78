// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, options) and contracts (interfaces) only; the
// arithmetic lives in internal/protocol.
package domain
