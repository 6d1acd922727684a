package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/colonyops/taskline/internal/core/config"
)

// Flags holds global flag values shared by all commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskline", "config.yaml")
}

// parseID parses a task id supplied on the command line. A non-numeric
// id is fatal: the returned error aborts the invocation.
func parseID(arg string) (uint32, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("id must be a number, got %q", arg)
	}
	return uint32(id), nil
}
