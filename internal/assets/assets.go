package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStarter loads an embedded starter by name.
// Returns ErrStarterNotFound if the starter does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStarter(name string) (*Starter, error) {
	return defaultLoader.LoadStarter(name)
}

// StarterNames lists the embedded starters.
func StarterNames() []string {
	return defaultLoader.List()
}
