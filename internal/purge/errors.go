package purge

import "errors"

var (
	ErrNoContent         = errors.New("content pattern matched no files")
	ErrContentUnreadable = errors.New("cannot read content file")
	ErrBadPattern        = errors.New("invalid pattern")
	ErrInvalidCSS        = errors.New("stylesheet has syntax errors")
)
