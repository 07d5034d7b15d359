package errors

// ValidateDimensions checks layout parameters at the application boundary.
//
// The spiral generator itself is lenient: degenerate parameters produce an
// empty layout rather than an error. Boundary surfaces (CLI flags, config
// files, query parameters) call this instead so the user gets a diagnostic
// rather than a silently blank page.
func ValidateDimensions(width, height, tileSize float64) error {
	if width <= 0 {
		return New(ErrCodeInvalidDimension, "width must be positive, got %v", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidDimension, "height must be positive, got %v", height)
	}
	if tileSize <= 0 {
		return New(ErrCodeInvalidDimension, "tile size must be positive, got %v", tileSize)
	}
	return nil
}

// ValidateRowCount checks the row count for the SSR stress page.
// The cap keeps a hostile query parameter from inflating response size.
func ValidateRowCount(n, max int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "row count must be non-negative, got %d", n)
	}
	if max > 0 && n > max {
		return New(ErrCodeInvalidInput, "row count %d exceeds maximum %d", n, max)
	}
	return nil
}
