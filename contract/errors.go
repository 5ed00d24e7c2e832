package main

// Revert symbols. Stable identifiers observers and frontends match on, the
// human message next to them can change freely.
const (
	errInvalidAmount       = "invalid_amount"
	errInvalidPayload      = "invalid_payload"
	errMathOverflow        = "math_overflow"
	errInsufficientRewards = "insufficient_rewards"
	errInsufficientUnits   = "insufficient_units"
	errNoRewards           = "no_rewards"
	errUnauthorized        = "unauthorized"
	errNoFunds             = "no_funds"
	errNotInitialized      = "not_initialized"
	errAlreadyInitialized  = "already_initialized"
	errIntentMissing       = "intent_missing"
)
