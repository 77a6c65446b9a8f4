package config

import "path/filepath"

// ClarinetManifest is the subset of Clarinet.toml the CLI reads
type ClarinetManifest struct {
	Project   ProjectSection             `toml:"project"`
	Contracts map[string]ContractSection `toml:"contracts"`
}

// ProjectSection is the [project] table
type ProjectSection struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Authors     []string `toml:"authors"`
}

// ContractSection is a [contracts.<name>] table
type ContractSection struct {
	Path           string `toml:"path"`
	ClarityVersion int    `toml:"clarity_version"`
	Epoch          any    `toml:"epoch"`
}

// ContractFor returns the name of the [contracts.<name>] entry whose path
// points at file. Relative entry paths are resolved against projectRoot.
func (m *ClarinetManifest) ContractFor(projectRoot, file string) (string, bool) {
	if m == nil {
		return "", false
	}
	file = filepath.Clean(file)
	for name, section := range m.Contracts {
		if section.Path == "" {
			continue
		}
		path := filepath.FromSlash(section.Path)
		if filepath.Clean(path) == file || filepath.Join(projectRoot, path) == file {
			return name, true
		}
	}
	return "", false
}
