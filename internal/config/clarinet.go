package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	domainconfig "github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

// loadEnvFiles loads .env then .env.local from the project root. Variables
// already set in the environment win.
func loadEnvFiles(projectRoot string) {
	for _, name := range []string{".env", ".env.local"} {
		envFile := filepath.Join(projectRoot, name)
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
		}
	}
}

// loadClarinetManifest parses Clarinet.toml. A missing manifest is not an
// error: project_root may point anywhere.
func loadClarinetManifest(projectRoot string) (*domainconfig.ClarinetManifest, error) {
	path := filepath.Join(projectRoot, ManifestFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var manifest domainconfig.ClarinetManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}
	return &manifest, nil
}
