package validation

// ==================== Error Messages ====================

const (
	ErrFmtReadData       = "failed to read data file %s: %w"
	ErrFmtLoadSchema     = "failed to load schema %s: %w"
	ErrFmtParseData      = "failed to parse JSON data: %w"
	ErrFmtReadSchema     = "failed to read schema file: %w"
	ErrFmtParseSchema    = "failed to parse schema JSON: %w"
	ErrFmtAddResource    = "failed to add schema resource: %w"
	ErrFmtCompileSchema  = "failed to compile schema: %w"
	ErrFmtSchemaFailed   = "schema validation failed:\n%s"
	ErrFmtValidation     = "validation error: %w"
	ErrFmtErrorAt        = "  - at %s: %s validation failed"
	ErrFmtErrorAtNoKind  = "  - at %s: validation failed"
	RootInstanceLocation = "(root)"
)
