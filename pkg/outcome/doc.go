// Package outcome provides Outcome, a two-variant Success/Failure value meant
// to replace bare bool returns, and the combinators to compose outcomes.
//
// Highlights:
// - Success/Failure: the two variants, matchable with a plain switch
// - FromBool/FromError: build an Outcome from a bool or an error
// - And/Or: eager combinators over already computed outcomes
// - AndThen/OrThen: lazy combinators that only call the continuation when needed
// - OrNone/OrErr/OrResult/OrPanic: convert an Outcome into mo.Option, (T, error),
//   Result or a bare value
// - All/Any/Match: folds and exhaustive matching
//
// An Outcome carries no payload. Use Result when the failure needs an error.
package outcome
