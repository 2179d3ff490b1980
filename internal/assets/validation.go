package assets

import (
	"fmt"
	"strings"
)

// ValidateTemplateName checks a page template name before it is mapped to
// templates/<name>.html. The name is the bare stem ("page", "report"):
// the loader adds the directory and the extension itself, so any slash,
// backslash or dot in name is rejected with ErrInvalidAssetName.
func ValidateTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty template name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: template %q must be a bare name without path or extension", ErrInvalidAssetName, name)
	}
	return nil
}
