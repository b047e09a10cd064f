// Package chain provides a minimal fluent Chain for synchronous composition
// of outcome.Outcome values with a context.
//
// Key operations:
// - Start/FromBool: create a Chain
// - Then/Otherwise: lazy AND / OR over context-aware steps
// - And/Or: eager AND / OR with another Chain
// - Ensure: trigger side effects without changing the outcome
// - Finally: collapse the chain into an Outcome via handlers
package chain
