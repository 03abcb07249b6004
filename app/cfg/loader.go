package cfg

import (
	"cmp"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// Extension environment
	SettingsFile string   `long:"settings-file" env:"SETTINGS_FILE" default:"./settings.yml" description:"YAML file holding extension settings (access token, locale, color scheme)"`
	ColorScheme  string   `long:"color-scheme" env:"COLOR_SCHEME" default:"auto" choice:"auto" choice:"dark" choice:"light" choice:"no-preference" description:"Color scheme preference reported to the UI"`
	Languages    []string `long:"language" env:"LANGUAGES" env-delim:"," description:"Preferred languages, most preferred first (defaults to the process locale)"`

	// One-shot resolution
	InputFile string `long:"input" short:"i" env:"INPUT_FILE" description:"Resolve a feed item document and print display items instead of serving"`
	InputKind string `long:"input-kind" env:"INPUT_KIND" default:"auto" choice:"auto" choice:"json" choice:"feed" description:"How to read --input"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// Load parses the process arguments and environment.
func Load() (*Cfg, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs parses args and the environment. Help output yields a nil config
// and no error.
func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:         raw.Port,
		APIAccessKey: raw.APIAccessKey,
		SettingsFile: raw.SettingsFile,
		ColorScheme:  raw.ColorScheme,
		Languages:    raw.Languages,
		InputFile:    raw.InputFile,
		InputKind:    raw.InputKind,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

// Get returns the loaded configuration. It panics if Load was not called.
func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
