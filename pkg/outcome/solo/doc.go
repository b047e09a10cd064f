// Package solo contains single-value, synchronous helpers that produce and
// consume outcome.Outcome with a context threaded through every callback.
//
// Highlights:
// - Validate: run a predicate and turn its answer into an Outcome
// - Try: call a function returning error and map nil to Success
// - AndThen/OrThen: lazy combinators that also stop on a done context
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - Join: run steps in order, AND-ing their outcomes
package solo
