package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with value",
			args:    []string{"-d", "dsn", "-x", "other"},
			allowed: []string{"-d"},
			want:    []string{"-d", "dsn"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"-d=dsn", "--config=conf.json"},
			allowed: []string{"-d"},
			want:    []string{"-d=dsn"},
		},
		{
			name:    "flag followed by another flag has no value",
			args:    []string{"-d", "-l", "debug"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "empty when nothing matches",
			args:    []string{"-x", "1", "-y=2"},
			allowed: []string{"-d"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJSONConfigFlags(t *testing.T) {
	assert.Equal(t, "conf.json", JSONConfigFlags([]string{"-c", "conf.json"}))
	assert.Equal(t, "conf.json", JSONConfigFlags([]string{"-config=conf.json"}))
	assert.Equal(t, "", JSONConfigFlags([]string{"-d", "dsn"}))
	assert.Equal(t, "", JSONConfigFlags(nil))
}
