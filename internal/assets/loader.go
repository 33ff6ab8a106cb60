package assets

// Starter is a project skeleton: page data, build settings, stylesheet and
// template. Files maps slash-separated relative paths to their content.
type Starter struct {
	Name  string
	Files map[string]string
}

// DefaultStarterName is the name of the built-in self-contained starter.
const DefaultStarterName = "default"

// StarterLoader defines the contract for loading starter projects.
type StarterLoader interface {
	// LoadStarter loads a starter by name.
	// Returns ErrStarterNotFound if the starter doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStarter(name string) (*Starter, error)
}
