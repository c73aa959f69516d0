package dial

import (
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -1 }, true},
		{"start equals end", func(c *Config) { c.EndAngle = c.StartAngle }, true},
		{"start after end", func(c *Config) { c.StartAngle = 500 }, true},
		{"one big step", func(c *Config) { c.BigSteps = 1 }, true},
		{"two big steps ok", func(c *Config) { c.BigSteps = 2 }, false},
		{"negative small steps", func(c *Config) { c.SmallSteps = -1 }, true},
		{"zero small steps ok", func(c *Config) { c.SmallSteps = 0 }, false},
		{"zero animation step", func(c *Config) { c.Step = 0 }, true},
		{"rest before start", func(c *Config) { c.RestAngle = 100 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeriveDefaultGeometry(t *testing.T) {
	geo := DefaultConfig().Derive()

	if geo.Sweep != 270 {
		t.Errorf("Sweep = %v, want 270", geo.Sweep)
	}
	if geo.MajorStep != 27 {
		t.Errorf("MajorStep = %v, want 27", geo.MajorStep)
	}
	if math.Abs(geo.MinorStep-5.4) > 1e-9 {
		t.Errorf("MinorStep = %v, want 5.4", geo.MinorStep)
	}
	if geo.MinorTickCount != 51 {
		t.Errorf("MinorTickCount = %v, want 51", geo.MinorTickCount)
	}
	if geo.Center.X != 250 || geo.Center.Y != 250 {
		t.Errorf("Center = %v, want (250, 250)", geo.Center)
	}
	if geo.Radius != 250 {
		t.Errorf("Radius = %v, want 250", geo.Radius)
	}
}

func TestDeriveNonSquareCanvas(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 800
	cfg.Height = 500
	geo := cfg.Derive()

	if geo.Center.X != 400 || geo.Center.Y != 250 {
		t.Errorf("Center = %v, want (400, 250)", geo.Center)
	}
	if geo.Radius != 250 {
		t.Errorf("Radius = %v, want the half of the smaller dimension (250)", geo.Radius)
	}
}

func TestMaxValue(t *testing.T) {
	if got := DefaultConfig().MaxValue(); got != 100 {
		t.Errorf("MaxValue() = %v, want 100", got)
	}
}
