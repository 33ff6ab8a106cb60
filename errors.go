package maintpage

import "errors"

// Sentinel errors for build stages.
var (
	// Page data errors.
	ErrDataNotFound = errors.New("page data file not found")
	ErrDataParse    = errors.New("page data is not a valid JSON object")

	// Stylesheet errors.
	ErrStyleNotFound = errors.New("stylesheet source not found")
	ErrStyleCompile  = errors.New("stylesheet compilation failed")

	// Pruning errors.
	ErrPrune = errors.New("unused CSS pruning failed")

	// Minification errors. The wrapped message lists the minifier errors.
	ErrMinify = errors.New("CSS minification reported errors")

	// Template errors.
	ErrRender = errors.New("template rendering failed")

	// Output errors.
	ErrWriteOutput = errors.New("cannot write output file")

	// Job validation errors.
	ErrInvalidJob   = errors.New("invalid build job")
	ErrInvalidLevel = errors.New("invalid minification level")
)
