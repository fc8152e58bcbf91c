package movepool

// Attack types accepted by the whitelist. Comparison is case-insensitive.
const (
	AttackTypeFire     = "fire"
	AttackTypeWater    = "water"
	AttackTypePsyche   = "psyche"
	AttackTypeNormal   = "normal"
	AttackTypeDarkness = "darkness"
)

// DefaultSpecies is the movepool entry used for species without their own entry
const DefaultSpecies = "default"

// Embedded resources
const (
	DefaultPoolPath = "data/default.yaml"
	SchemaName      = "data/movepool.schema.json"
)

// Format identifies the encoding of a movepool file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ==================== Error Messages ====================

const (
	ErrFmtReadPool          = "failed to read movepool %s: %w"
	ErrFmtUnsupportedFormat = "%w: unsupported movepool file extension %q"
	ErrFmtDecodeYAML        = "%w: failed to decode YAML: %v"
	ErrFmtDecodeJSON        = "%w: failed to decode JSON: %v"
	ErrFmtSchema            = "%w: %v"
	ErrFmtAttackType        = "%w: %q on move %q"
	ErrFmtDuplicateMove     = "%w: duplicate move %q"
	ErrFmtDuplicateSpecies  = "%w: duplicate species %q"
	ErrFmtUnknownSlotMove   = "%w: %q in species %q"
	ErrFmtUnknownMove       = "%w: %q"
	ErrFmtUnknownSpecies    = "%w: no movepool for species %q"
	ErrFmtTooManySlots      = "%w: species %q has %d slots"
)
