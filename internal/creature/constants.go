package creature

// Default combat stats for a freshly built creature
const (
	DefaultLevel          = 1
	DefaultAttack         = 10
	DefaultDefense        = 20
	DefaultSpecialAttack  = 12
	DefaultSpecialDefense = 20
	DefaultSpeed          = 4
	DefaultEvade          = 5
	DefaultMaxHealth      = 100
)

// TagAttackType is the validator tag checking a move's attack type against the whitelist
const TagAttackType = "attacktype"

// ==================== Error Messages ====================

const (
	ErrFmtTooManyMoves = "%w: %q has %d moves, at most %d fit"
	ErrFmtInvalid      = "%w: %s"
	ErrFmtAttackType   = "%w: %q on move %q"
	ErrFmtMovesFor     = "failed to build moves for %q: %w"
)
