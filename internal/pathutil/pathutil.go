// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// Paths holds all application path configurations.
type Paths struct {
	configDir       string
	configFileName  string
	logFileName     string
	currentFileName string
	historyFileName string

	// Computed absolute paths
	configFilePath  string
	logFilePath     string
	currentFilePath string
	historyFilePath string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:       "avocado",
			configFileName:  "config.yml",
			logFileName:     "avocado.log",
			currentFileName: ".avocado",
			historyFileName: ".avocado_history",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// CurrentFilePath is the default location of the current session file.
func CurrentFilePath() string {
	return Must().currentFilePath
}

// HistoryFilePath is the default location of the session history log.
func HistoryFilePath() string {
	return Must().historyFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv("AVOCADO_ENV"))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.logFileName = fmt.Sprintf("avocado_%s.log", env)
		p.currentFileName = fmt.Sprintf(".avocado_%s", env)
		p.historyFileName = fmt.Sprintf(".avocado_%s_history", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	p.currentFilePath = filepath.Join(xdg.Home, p.currentFileName)

	p.historyFilePath = filepath.Join(xdg.Home, p.historyFileName)

	return nil
}

// Expand replaces a leading ~ in path with the user's home directory.
func Expand(path string) string {
	if path == "~" {
		return xdg.Home
	}

	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(xdg.Home, path[2:])
	}

	return path
}
