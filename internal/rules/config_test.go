package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.MinMeaningfulLength)
	assert.Equal(t, 40, cfg.MaxMeaningfulLength)
	assert.InDelta(t, 14.0, cfg.MinSize, 0)
	assert.InDelta(t, 44.0, cfg.MinInteractiveSize, 0)
	assert.InDelta(t, 0.1, cfg.Tolerance, 0)
	assert.True(t, cfg.AllInteractiveElements)

	cfg.ImageWords[0] = "changed"
	assert.Equal(t, "image", DefaultImageWords[0], "defaults are copied")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative min length", func(c *Config) { c.MinMeaningfulLength = -1 }},
		{"negative max length", func(c *Config) { c.MaxMeaningfulLength = -1 }},
		{"max below min", func(c *Config) { c.MinMeaningfulLength = 10; c.MaxMeaningfulLength = 5 }},
		{"negative size", func(c *Config) { c.MinSize = -1 }},
		{"negative interactive size", func(c *Config) { c.MinInteractiveSize = -0.5 }},
		{"negative tolerance", func(c *Config) { c.Tolerance = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
