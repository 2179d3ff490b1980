// Package assets provides the HTML page template for document generation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default page)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the template
// is not found, so a custom directory only needs the templates it changes.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.html          # page template (e.g., page.html)
//
// Templates use html/template syntax and receive pipeline.PageData.
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
