package assets_test

import (
	"testing"

	"prefab-manager/core/assets"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"File", assets.SourceFile, true},
		{"Storage", assets.SourceStorage, true},
		{"Invalid", "invalid", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := assets.Config{Source: tt.source}
			assert.Equal(t, tt.want, c.IsValidSource())
		})
	}
}
