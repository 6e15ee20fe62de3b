/*
Package config manages TOML config for hangsolve.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/hangsolve/internal/utils"
	"github.com/bastiangx/hangsolve/pkg/session"
	"github.com/bastiangx/hangsolve/pkg/suggest"
	"github.com/charmbracelet/log"
)

// AppName names the config directory.
const AppName = "hangsolve"

// Config holds the entire config structure
type Config struct {
	Solver   SolverConfig   `toml:"solver"`
	Game     GameConfig     `toml:"game"`
	Dict     DictConfig     `toml:"dict"`
	CLI      CliConfig      `toml:"cli"`
	SelfTest SelfTestConfig `toml:"selftest"`
}

// SolverConfig holds the scoring policy and scan parallelism.
type SolverConfig struct {
	ExcludeFullCoverage bool `toml:"exclude_full_coverage"`
	ShortListThreshold  int  `toml:"short_list_threshold"`
	Workers             int  `toml:"workers"`
	ParallelThreshold   int  `toml:"parallel_threshold"`
}

// GameConfig holds per-session rules.
type GameConfig struct {
	MaxMisses int `toml:"max_misses"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path     string `toml:"path"`
	MaxWords int    `toml:"max_words"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Color          bool `toml:"color"`
	ShowCandidates bool `toml:"show_candidates"`
}

// SelfTestConfig holds options for the exhaustive dictionary run.
type SelfTestConfig struct {
	MaxMisses int `toml:"max_misses"`
	Workers   int `toml:"workers"`
	MaxTurns  int `toml:"max_turns"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	opts := suggest.DefaultOptions()
	return &Config{
		Solver: SolverConfig{
			ExcludeFullCoverage: opts.ExcludeFullCoverage,
			ShortListThreshold:  opts.ShortListThreshold,
			Workers:             opts.Workers,
			ParallelThreshold:   opts.ParallelThreshold,
		},
		Game: GameConfig{
			MaxMisses: 0,
		},
		Dict: DictConfig{
			Path:     "",
			MaxWords: 0,
		},
		CLI: CliConfig{
			Color:          true,
			ShowCandidates: true,
		},
		SelfTest: SelfTestConfig{
			MaxMisses: 6,
			Workers:   0,
			MaxTurns:  26,
		},
	}
}

// SolverOptions converts the [solver] section.
func (c *Config) SolverOptions() suggest.Options {
	return suggest.Options{
		ExcludeFullCoverage: c.Solver.ExcludeFullCoverage,
		ShortListThreshold:  c.Solver.ShortListThreshold,
		Workers:             c.Solver.Workers,
		ParallelThreshold:   c.Solver.ParallelThreshold,
	}
}

// SessionOptions converts the [game] section.
func (c *Config) SessionOptions() session.Options {
	return session.Options{MaxMisses: c.Game.MaxMisses}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/hangsolve
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		primaryPath := filepath.Join(homeDir, ".config", AppName)
		if result := utils.CheckDirStatus(primaryPath); result.Writable {
			return primaryPath, nil
		}
	} else {
		log.Warnf("Failed to get home directory: %v", err)
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/hangsolve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, falling back to section by section recovery.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every section that still parses and defaults the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "solver"); ok {
		extractSolverConfig(section, &config.Solver)
	}
	if section, ok := utils.ExtractSection(tempConfig, "game"); ok {
		extractGameConfig(section, &config.Game)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	if section, ok := utils.ExtractSection(tempConfig, "selftest"); ok {
		extractSelfTestConfig(section, &config.SelfTest)
	}
	return config, nil
}

func extractSolverConfig(data map[string]any, solver *SolverConfig) {
	if val, ok := utils.ExtractBool(data, "exclude_full_coverage"); ok {
		solver.ExcludeFullCoverage = val
	}
	if val, ok := utils.ExtractInt64(data, "short_list_threshold"); ok {
		solver.ShortListThreshold = val
	}
	if val, ok := utils.ExtractInt64(data, "workers"); ok {
		solver.Workers = val
	}
	if val, ok := utils.ExtractInt64(data, "parallel_threshold"); ok {
		solver.ParallelThreshold = val
	}
}

func extractGameConfig(data map[string]any, game *GameConfig) {
	if val, ok := utils.ExtractInt64(data, "max_misses"); ok {
		game.MaxMisses = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		dict.MaxWords = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "color"); ok {
		cli.Color = val
	}
	if val, ok := utils.ExtractBool(data, "show_candidates"); ok {
		cli.ShowCandidates = val
	}
}

func extractSelfTestConfig(data map[string]any, st *SelfTestConfig) {
	if val, ok := utils.ExtractInt64(data, "max_misses"); ok {
		st.MaxMisses = val
	}
	if val, ok := utils.ExtractInt64(data, "workers"); ok {
		st.Workers = val
	}
	if val, ok := utils.ExtractInt64(data, "max_turns"); ok {
		st.MaxTurns = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}
