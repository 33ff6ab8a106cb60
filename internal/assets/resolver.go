package assets

import (
	"errors"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the starter is not found in the custom location.
type AssetResolver struct {
	custom   StarterLoader // nil if no custom path configured
	embedded StarterLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded starters are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStarter loads a starter, trying the custom loader first if available.
func (r *AssetResolver) LoadStarter(name string) (*Starter, error) {
	if r.custom == nil {
		return r.embedded.LoadStarter(name)
	}

	s, err := r.custom.LoadStarter(name)
	if err == nil {
		return s, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrStarterNotFound) {
		return nil, err
	}

	return r.embedded.LoadStarter(name)
}

// HasCustomLoader returns true if a custom starter loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ StarterLoader = (*AssetResolver)(nil)
