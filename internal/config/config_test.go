package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultHopSquareConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Decode("hopsquare.yaml", GetDefaultYAML("hopsquare"))
	if err != nil {
		t.Fatalf("Decode(embedded) failed: %v", err)
	}
	if cfg != DefaultHopSquareConfig() {
		t.Errorf("embedded YAML drifted from DefaultHopSquareConfig:\n%+v\n%+v", cfg, DefaultHopSquareConfig())
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		data    string
		check   func(HopSquareConfig) bool
		wantErr bool
	}{
		{
			name:  "partial yaml keeps defaults",
			path:  "custom.yaml",
			data:  "enemies:\n  base_count: 3\n",
			check: func(c HopSquareConfig) bool { return c.Enemies.BaseCount == 3 && c.Player.Size == 50 },
		},
		{
			name:  "toml override",
			path:  "custom.toml",
			data:  "[player]\nspeed = 7.5\n\n[platforms]\nreachable = true\n",
			check: func(c HopSquareConfig) bool { return c.Player.Speed == 7.5 && c.Platforms.Reachable && c.World.Width == 800 },
		},
		{
			name:    "broken yaml",
			path:    "broken.yml",
			data:    "world: [",
			wantErr: true,
		},
		{
			name:    "unknown extension",
			path:    "custom.json",
			data:    "{}",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Decode(tc.path, []byte(tc.data))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() failed: %v", err)
			}
			if !tc.check(cfg) {
				t.Errorf("unexpected config: %+v", cfg)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hop.toml")
	if err := os.WriteFile(path, []byte("[session]\nmax_hits = 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Session.MaxHits != 5 {
		t.Errorf("MaxHits = %d, expected 5", cfg.Session.MaxHits)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("world:\n  width: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("world narrower than a platform should be invalid, got %v", err)
	}
}

func TestValidateRejectsDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HopSquareConfig)
	}{
		{"window smaller than platform", func(c *HopSquareConfig) { c.World.Width = 100 }},
		{"max below min horizontal", func(c *HopSquareConfig) {
			c.Platforms.MinHorizontalDistance = 300
			c.Platforms.MaxHorizontalDistance = 200
		}},
		{"zero gravity", func(c *HopSquareConfig) { c.Physics.Gravity = 0 }},
		{"downward jump", func(c *HopSquareConfig) { c.Player.JumpImpulse = 3 }},
		{"zero jump unit", func(c *HopSquareConfig) { c.Platforms.JumpUnit = 0 }},
		{"power-up wider than platform", func(c *HopSquareConfig) { c.PowerUp.Size = 200 }},
		{"level zero", func(c *HopSquareConfig) { c.Session.StartLevel = 0 }},
		{"no hits allowed", func(c *HopSquareConfig) { c.Session.MaxHits = 0 }},
		{"no enemy step", func(c *HopSquareConfig) { c.Enemies.LevelsPerEnemy = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHopSquareConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestLevelScaling(t *testing.T) {
	cfg := DefaultHopSquareConfig()

	counts := map[int]int{1: 1, 4: 1, 5: 2, 9: 2, 10: 3}
	for level, want := range counts {
		if got := cfg.EnemyCount(level); got != want {
			t.Errorf("EnemyCount(%d) = %d, expected %d", level, got, want)
		}
	}

	if got := cfg.EnemySpeed(1); got != 2.1 {
		t.Errorf("EnemySpeed(1) = %g, expected 2.1", got)
	}
	if got := cfg.EnemySpeed(10); got != 3 {
		t.Errorf("EnemySpeed(10) = %g, expected 3", got)
	}

	minH, maxH := cfg.HorizontalBounds()
	if minH != 266 || maxH != 266 {
		t.Errorf("HorizontalBounds() = (%d, %d), expected (266, 266)", minH, maxH)
	}

	cfg.Player.Speed = 60
	if _, maxH := cfg.HorizontalBounds(); maxH != 328 {
		t.Errorf("fast player should widen max distance to the jump arc, got %d", maxH)
	}

	if cfg.PowerUpDuration() != 2*time.Second {
		t.Errorf("PowerUpDuration() = %v", cfg.PowerUpDuration())
	}
	if TickDuration(0) != TickDuration(60) {
		t.Error("zero tick rate should fall back to 60")
	}
}
