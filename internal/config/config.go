package config

import (
	"fmt"
	"os"
	"sync/atomic"

	"killspree/internal/domain"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Defaults for values missing from the settings file.
const (
	DefaultConfigPath       = "data/spree.yaml"
	DefaultMinLevelSpreeCmd = 0
	DefaultMinLevelReload   = 100
)

// MessageEntry is one "start#end" spree message keyed by its exact threshold.
type MessageEntry struct {
	Threshold int    `yaml:"threshold"`
	Message   string `yaml:"message"`
}

// Options holds the behavior switches of the settings file.
type Options struct {
	ResetSpree       bool `yaml:"reset_spree"`
	MinLevelSpreeCmd int  `yaml:"min_level_spree_cmd"`
	MinLevelReload   int  `yaml:"min_level_reload"`
}

// Settings is the parsed spree settings file.
type Settings struct {
	Options              Options        `yaml:"settings"`
	KillingSpreeMessages []MessageEntry `yaml:"killingspree_messages"`
	LosingSpreeMessages  []MessageEntry `yaml:"loosingspree_messages"`
}

// Env is read from the Nakama runtime environment map.
// Pointer fields are optional overrides of the settings file.
type Env struct {
	ConfigPath       string `env:"SPREE_CONFIG_PATH" envDefault:"data/spree.yaml"`
	ResetSpree       *bool  `env:"SPREE_RESET_SPREE"`
	MinLevelSpreeCmd *int   `env:"SPREE_MIN_LEVEL_SPREE_CMD"`
}

// ValidationError represents a settings validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// DefaultSettings returns settings with no messages and default levels.
func DefaultSettings() Settings {
	return Settings{
		Options: Options{
			MinLevelSpreeCmd: DefaultMinLevelSpreeCmd,
			MinLevelReload:   DefaultMinLevelReload,
		},
	}
}

// ParseEnv decodes the runtime environment map.
func ParseEnv(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse runtime env: %w", err)
	}
	return e, nil
}

// Apply overrides settings with any values set in the environment.
func (e Env) Apply(s *Settings) {
	if e.ResetSpree != nil {
		s.Options.ResetSpree = *e.ResetSpree
	}
	if e.MinLevelSpreeCmd != nil {
		s.Options.MinLevelSpreeCmd = *e.MinLevelSpreeCmd
	}
}

// LoadSettings reads and validates the settings file at path.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spree settings: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML settings, applying defaults for missing fields.
func ParseSettings(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse spree settings: %w", err)
	}
	if err := ValidateSettings(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ValidateSettings checks option values. Message entries are checked by the catalog.
func ValidateSettings(s *Settings) error {
	if s.Options.MinLevelSpreeCmd < 0 {
		return ValidationError{Field: "settings.min_level_spree_cmd", Message: "must not be negative"}
	}
	if s.Options.MinLevelReload < 0 {
		return ValidationError{Field: "settings.min_level_reload", Message: "must not be negative"}
	}
	return nil
}

// CatalogEntries converts the configured message lists for the catalog.
func (s *Settings) CatalogEntries() (kill, loss []domain.CatalogEntry) {
	return toEntries(s.KillingSpreeMessages), toEntries(s.LosingSpreeMessages)
}

func toEntries(in []MessageEntry) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(in))
	for i, m := range in {
		out[i] = domain.CatalogEntry{Threshold: m.Threshold, Message: m.Message}
	}
	return out
}

// Store publishes the active settings to every match and RPC.
type Store struct {
	current atomic.Pointer[Settings]
}

// NewStore returns a store holding s.
func NewStore(s *Settings) *Store {
	st := &Store{}
	st.Set(s)
	return st
}

// Set atomically replaces the active settings.
func (st *Store) Set(s *Settings) {
	st.current.Store(s)
}

// Get returns the active settings.
func (st *Store) Get() *Settings {
	s := st.current.Load()
	if s == nil {
		d := DefaultSettings()
		return &d
	}
	return s
}

// ResetSpree reports whether spree state is cleared at session end.
func (st *Store) ResetSpree() bool {
	return st.Get().Options.ResetSpree
}

// MinLevelSpreeCmd returns the privilege needed for the spree command.
func (st *Store) MinLevelSpreeCmd() int {
	return st.Get().Options.MinLevelSpreeCmd
}

// MinLevelReload returns the privilege needed to reload the settings.
func (st *Store) MinLevelReload() int {
	return st.Get().Options.MinLevelReload
}
