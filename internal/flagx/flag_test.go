package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-t", "10"},
			names: []string{"c", "config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "double dash with equals",
			args:  []string{"--config=alt.json", "-t", "10"},
			names: []string{"c", "config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "unknown flags and positionals ignored",
			args:  []string{"-x", "1", "--y=2", "positional"},
			names: []string{"c"},
			want:  []string{},
		},
		{
			name:  "flag without value at the end",
			args:  []string{"-c"},
			names: []string{"c"},
			want:  []string{"-c"},
		},
		{
			name:  "next dash token is not a value",
			args:  []string{"-c", "-auth-url=http://x"},
			names: []string{"c", "auth-url"},
			want:  []string{"-c", "-auth-url=http://x"},
		},
		{
			name:  "equals value that looks like a flag",
			args:  []string{"--config=--weird.json"},
			names: []string{"config"},
			want:  []string{"--config=--weird.json"},
		},
		{
			name:  "repeated flag keeps order",
			args:  []string{"-c", "one.json", "-c", "two.json"},
			names: []string{"c"},
			want:  []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:  "empty args",
			args:  []string{},
			names: []string{"c"},
			want:  []string{},
		},
		{
			name:  "bare value is not a flag even if it matches a name",
			args:  []string{"c", "conf.json"},
			names: []string{"c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pick(tt.args, tt.names...))
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Run("short -c", func(t *testing.T) {
		assert.Equal(t, "/path/short.json", ConfigPath([]string{"-c", "/path/short.json"}))
	})

	t.Run("long -config", func(t *testing.T) {
		assert.Equal(t, "/path/long.json", ConfigPath([]string{"-config", "/path/long.json"}))
	})

	t.Run("other flags ignored", func(t *testing.T) {
		assert.Empty(t, ConfigPath([]string{"-t", "5", "-d", "/tmp/game"}))
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "/path/2.json", ConfigPath([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
	})
}
