package tokens

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadTOML reads a token table from TOML. Each table header names a category:
//
//	[spacing]
//	3xl = "64px"
//
//	[color]
//	brand = "#7c3aed"
func LoadTOML(r io.Reader) (*Table, error) {
	var raw map[string]map[string]string
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode tokens: %w", err)
	}

	t := NewTable()
	for categoryName, entries := range raw {
		category, err := ParseCategory(categoryName)
		if err != nil {
			return nil, err
		}
		for name, value := range entries {
			if value == "" {
				return nil, fmt.Errorf("token %s.%s has an empty value", categoryName, name)
			}
			t.Set(category, name, value)
		}
	}
	return t, nil
}

// LoadTOMLFile reads a token table from a TOML file.
func LoadTOMLFile(path string) (*Table, error) {
	// #nosec G304 - path comes from trusted configuration
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tokens file: %w", err)
	}
	defer f.Close()

	t, err := LoadTOML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
