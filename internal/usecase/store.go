// Package usecase contains the application-specific business rules.
// Each store holds a client-side mirror of remote state and is the only
// place views read that state from.
package usecase

// Resettable is implemented by every store that holds per-session state.
type Resettable interface {
	// Reset drops all held state and returns the store to its initial values.
	Reset()
}
