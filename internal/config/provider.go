package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	domainconfig "github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

// ManifestFile marks the root of a Clarinet project
const ManifestFile = "Clarinet.toml"

// DataDir is the per-project directory holding config.local.json
func DataDir(projectRoot string) string {
	return filepath.Join(projectRoot, ".clarity")
}

// ErrNotInProject is returned by FindProjectRoot outside a Clarinet project
var ErrNotInProject = errors.New("not in a Clarinet project (Clarinet.toml not found)")

// Provider creates RuntimeConfig for Wire dependency injection. An empty
// project_root is allowed; commands that need a project report it themselves.
func Provider(v *viper.Viper) (*domainconfig.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot != "" {
		abs, err := filepath.Abs(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project root: %w", err)
		}
		projectRoot = abs
	}

	delimiter := domainconfig.Delimiter(strings.ToLower(v.GetString("extract_delimiter")))
	switch delimiter {
	case domainconfig.DelimiterBrace, domainconfig.DelimiterParen:
	default:
		return nil, fmt.Errorf("invalid extract_delimiter %q (expected brace or paren)", delimiter)
	}

	cfg := &domainconfig.RuntimeConfig{
		ProjectRoot:      projectRoot,
		ClarinetPath:     v.GetString("clarinet_path"),
		Shell:            v.GetString("shell"),
		ContractGlob:     v.GetString("contract_glob"),
		ScratchDir:       v.GetString("scratch_dir"),
		ScratchExt:       v.GetString("scratch_ext"),
		ExtractDelimiter: delimiter,
		Debug:            v.GetBool("debug"),
		NonInteractive:   v.GetBool("non_interactive"),
		Timeout:          v.GetDuration("timeout"),
		Pacing: domainconfig.PacingPolicy{
			ConsoleWarmup:    v.GetDuration("console_warmup"),
			BatchSettle:      v.GetDuration("batch_settle"),
			BatchInterval:    v.GetDuration("batch_interval"),
			DefinitionSettle: v.GetDuration("definition_settle"),
			CleanupDelay:     v.GetDuration("cleanup_delay"),
		},
	}

	if projectRoot == "" {
		return cfg, nil
	}
	manifest, err := loadClarinetManifest(projectRoot)
	if err != nil {
		return nil, err
	}
	cfg.Manifest = manifest

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find Clarinet.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, ManifestFile)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInProject
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance. The project's .env
// files are loaded first so CLARITY_* variables can live there.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	if projectRoot != "" {
		loadEnvFiles(projectRoot)

		v.SetConfigName("config.local")
		v.SetConfigType("json")
		v.AddConfigPath(DataDir(projectRoot))
	}

	v.SetEnvPrefix("CLARITY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	pacing := domainconfig.DefaultPacing()
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("clarinet_path", "clarinet")
	v.SetDefault("shell", "")
	v.SetDefault("contract_glob", "**/*.clar")
	v.SetDefault("scratch_dir", "contracts")
	v.SetDefault("scratch_ext", "clar")
	v.SetDefault("extract_delimiter", string(domainconfig.DelimiterBrace))
	v.SetDefault("console_warmup", pacing.ConsoleWarmup)
	v.SetDefault("batch_settle", pacing.BatchSettle)
	v.SetDefault("batch_interval", pacing.BatchInterval)
	v.SetDefault("definition_settle", pacing.DefinitionSettle)
	v.SetDefault("cleanup_delay", pacing.CleanupDelay)
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	// Try to read config file (ignore error if not found)
	if projectRoot != "" {
		_ = v.ReadInConfig()
	}

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
