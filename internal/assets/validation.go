package assets

import (
	"fmt"
	"strings"
)

// maxNameLength bounds starter names.
const maxNameLength = 64

// ValidateAssetName checks that a starter name is safe for use as a
// directory name. Returns ErrInvalidAssetName if the name is empty, too long,
// or contains path separators, dots or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxNameLength)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
