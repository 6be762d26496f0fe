package config

import (
	"os"
	"path/filepath"
)

const (
	defaultConfigDirName = "agentage"
	defaultConfigFile    = "config.json"
	agentsDirName        = "agents"
)

func DefaultConfigPath() string {
	if env := os.Getenv("AGENTAGE_CONFIG"); env != "" {
		return env
	}
	base, err := os.UserConfigDir()
	if err == nil {
		return filepath.Join(base, defaultConfigDirName, defaultConfigFile)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".agentage", defaultConfigFile)
}

// GlobalAgentsDir is where installed and globally created agents live.
// AGENTAGE_HOME overrides the base directory.
func GlobalAgentsDir() string {
	if env := os.Getenv("AGENTAGE_HOME"); env != "" {
		return filepath.Join(env, agentsDirName)
	}
	base, err := os.UserConfigDir()
	if err == nil {
		return filepath.Join(base, defaultConfigDirName, agentsDirName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".agentage", agentsDirName)
}

// ProjectAgentsDir is the per-project agents directory, relative to the
// current working directory.
func ProjectAgentsDir() string {
	return agentsDirName
}
