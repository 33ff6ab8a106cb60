// Package assets provides the starter projects written by 'maintpage init'.
//
// # Loader Architecture
//
//	StarterLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in starters)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in starters: "default", a self-contained
// project, and "govuk", which imports govuk-frontend from node_modules.
//
// # Directory Structure
//
//	{basePath}/
//	└── {name}/
//	    ├── config.json          # Page data
//	    ├── maintpage.yaml       # Build settings
//	    └── src/
//	        ├── styles.scss      # Stylesheet source
//	        └── template.njk     # Page template
//
// # Security
//
// Starter names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
