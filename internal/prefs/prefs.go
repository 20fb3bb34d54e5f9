// Package prefs remembers UI choices between runs: the last game mode picked
// in the menu and the preferred tick rate. Game state is never stored here.
package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// AppName is the gdata application directory name.
const AppName = "hopsquare"

const settingsKey = "settings"

// Settings are the remembered UI choices.
type Settings struct {
	LastGameID string `json:"lastGameId"`
	TickRate   int    `json:"tickRate"`
}

// itemStore is the part of gdata.Manager used here.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes Settings.
type Store struct {
	items itemStore
}

// Open opens the per-user preferences location.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("prefs: cannot open: %w", err)
	}
	return &Store{items: m}, nil
}

// Load returns the saved settings. Missing settings are not an error.
func (s *Store) Load() (Settings, error) {
	if s == nil || s.items == nil {
		return Settings{}, nil
	}

	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		return Settings{}, fmt.Errorf("prefs: cannot load settings: %w", err)
	}
	if data == nil {
		// Nothing saved yet
		return Settings{}, nil
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("prefs: cannot parse settings: %w", err)
	}
	return settings, nil
}

// Save writes the settings.
func (s *Store) Save(settings Settings) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("prefs: cannot serialize settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("prefs: cannot save settings: %w", err)
	}
	return nil
}

// Update loads the settings, applies fn and saves the result.
func (s *Store) Update(fn func(*Settings)) error {
	settings, err := s.Load()
	if err != nil {
		return err
	}
	fn(&settings)
	return s.Save(settings)
}
