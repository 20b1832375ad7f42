package udfc

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultRenderConfig(t *testing.T) {
	c := DefaultRenderConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Font.Family != "Courier New" || c.Font.Size != 12 {
		t.Errorf("Font = %v", c.Font)
	}
	if c.Foreground != Yellow || c.Background != Cyan || c.OutlineColor != Blue {
		t.Errorf("colors = %v %v %v", c.Foreground, c.Background, c.OutlineColor)
	}
	if c.Gradient || c.Antialias || c.Shadow || c.Palette != nil {
		t.Error("effects enabled by default")
	}
}

func TestRenderConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RenderConfig)
		field  string
	}{
		{"zero size", func(c *RenderConfig) { c.Font.Size = 0 }, "font size"},
		{"zero multiplier", func(c *RenderConfig) { c.Multiplier = 0 }, "multiplier"},
		{"NaN multiplier", func(c *RenderConfig) { c.Multiplier = math.NaN() }, "multiplier"},
		{"negative outline", func(c *RenderConfig) { c.OutlineWidth = -1 }, "outline width"},
		{"angle 360", func(c *RenderConfig) { c.ShadowAngle = 360 }, "shadow angle"},
		{"negative angle", func(c *RenderConfig) { c.ShadowAngle = -1 }, "shadow angle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultRenderConfig()
			tt.mutate(&c)
			var ce *ConfigError
			if err := c.Validate(); !errors.As(err, &ce) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestRenderConfigPadding(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float64
		outline    int
		shadow     bool
		want       float64
	}{
		{"plain", 1, 0, false, 1},
		{"multiplier", 1.5, 0, false, 1.5},
		{"outline", 1, 2, false, 4},
		{"shadow", 1, 0, true, 2},
		{"outline and shadow", 2, 3, true, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultRenderConfig()
			c.Multiplier = tt.multiplier
			c.OutlineWidth = tt.outline
			c.Shadow = tt.shadow
			if got := c.Padding(); got != tt.want {
				t.Errorf("Padding() = %v, want %v", got, tt.want)
			}
		})
	}
}
