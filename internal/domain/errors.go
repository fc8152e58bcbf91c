package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Parsing errors
	ErrMsgInvalidDigit = "invalid digit"
	ErrMsgMissingValue = "missing value"

	// Item errors
	ErrMsgUnknownItem = "unknown item"
	ErrMsgNotOwned    = "item not in inventory"

	// Party errors
	ErrMsgTargetNotInParty = "target not in party"
	ErrMsgPartyFull        = "party is full"
	ErrMsgEmptyParty       = "party has no members"

	// Creature and move errors
	ErrMsgInvalidAttackType = "invalid attack type"
	ErrMsgUnknownMove       = "unknown move"
	ErrMsgTooManyMoves      = "too many moves"
	ErrMsgInvalidCreature   = "invalid creature"
	ErrMsgInvalidMovepool   = "invalid movepool"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
//
// ErrInvalidDigit, ErrMissingValue, ErrUnknownItem and ErrInvalidAttackType abort the
// operation that triggered them. ErrNotOwned, ErrTargetNotInParty and ErrPartyFull are
// recoverable: the operation is rejected and no state is changed.
var (
	ErrInvalidDigit = errors.New(ErrMsgInvalidDigit)
	ErrMissingValue = errors.New(ErrMsgMissingValue)

	ErrUnknownItem = errors.New(ErrMsgUnknownItem)
	ErrNotOwned    = errors.New(ErrMsgNotOwned)

	ErrTargetNotInParty = errors.New(ErrMsgTargetNotInParty)
	ErrPartyFull        = errors.New(ErrMsgPartyFull)
	ErrEmptyParty       = errors.New(ErrMsgEmptyParty)

	ErrInvalidAttackType = errors.New(ErrMsgInvalidAttackType)
	ErrUnknownMove       = errors.New(ErrMsgUnknownMove)
	ErrTooManyMoves      = errors.New(ErrMsgTooManyMoves)
	ErrInvalidCreature   = errors.New(ErrMsgInvalidCreature)
	ErrInvalidMovepool   = errors.New(ErrMsgInvalidMovepool)
)

// IsRecoverable reports whether err is one of the rejections that leave state unchanged.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrNotOwned) ||
		errors.Is(err, ErrTargetNotInParty) ||
		errors.Is(err, ErrPartyFull)
}
