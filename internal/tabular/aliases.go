package tabular

import (
	"os"

	"github.com/goccy/go-yaml"

	pkgerrors "github.com/cuebox/stagehand/pkg/errors"
)

// LoadAliases reads a flat YAML map of raw header names to canonical ones,
// e.g. "Constituent Number: Patron ID". An empty path means no aliases; a
// missing or unparsable file is a configuration error, since an alias file
// the operator pointed at but cannot be used would silently change which
// columns the run sees.
func LoadAliases(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.NewConfigError("aliases", "reading column alias file", err)
	}

	var aliases map[string]string
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, pkgerrors.NewConfigError("aliases", "parsing column alias file", err)
	}
	return aliases, nil
}
