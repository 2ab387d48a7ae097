package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{
			name:     "No args defaults to watch",
			args:     []string{},
			expected: Options{Type: CommandWatch},
		},
		{
			name:     "File flag short form",
			args:     []string{"-f", "/var/log/ufw.log"},
			expected: Options{Type: CommandWatch, File: "/var/log/ufw.log"},
		},
		{
			name: "Filter splits on commas and trims",
			args: []string{"-f", "ufw.log", "--filter", "DROP, REJECT ,,BLOCK"},
			expected: Options{
				Type:     CommandWatch,
				File:     "ufw.log",
				Keywords: []string{"DROP", "REJECT", "BLOCK"},
			},
		},
		{
			name: "IPs split on commas",
			args: []string{"-f", "ufw.log", "--include-ips", "203.0.113.5,10.0.0.8"},
			expected: Options{
				Type: CommandWatch,
				File: "ufw.log",
				IPs:  []string{"203.0.113.5", "10.0.0.8"},
			},
		},
		{
			name: "Regex and excludes",
			args: []string{"-f", "ufw.log", "--regex", `SRC=\S+`, "--exclude", "*noise*", "--exclude", "*probe*"},
			expected: Options{
				Type:     CommandWatch,
				File:     "ufw.log",
				Regex:    `SRC=\S+`,
				Excludes: []string{"*noise*", "*probe*"},
			},
		},
		{
			name: "Tail with TUI and output",
			args: []string{"-f", "ufw.log", "--tail", "--tui", "--output", "out.csv"},
			expected: Options{
				Type:   CommandWatch,
				File:   "ufw.log",
				Follow: true,
				TUI:    true,
				Output: "out.csv",
			},
		},
		{
			name:     "Capacity override",
			args:     []string{"-f", "ufw.log", "--capacity", "50"},
			expected: Options{Type: CommandWatch, File: "ufw.log", Capacity: 50},
		},
		{
			name:     "Version flag",
			args:     []string{"--version"},
			expected: Options{Type: CommandVersion},
		},
		{
			name:     "Version subcommand",
			args:     []string{"version"},
			expected: Options{Type: CommandVersion},
		},
		{
			name:     "Help flag",
			args:     []string{"--help"},
			expected: Options{Type: CommandHelp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)
			require.NoError(t, err)

			assert.Equal(t, &tt.expected, opts)
		})
	}
}

func Test_Parse_UnknownFlag(t *testing.T) {
	opts, err := Parse([]string{"--bogus"})

	assert.Nil(t, opts)
	assert.Error(t, err)
}

func Test_splitList(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "Empty value", value: "", expected: nil},
		{name: "Single entry", value: "DROP", expected: []string{"DROP"}},
		{name: "Trims whitespace", value: " DROP , REJECT ", expected: []string{"DROP", "REJECT"}},
		{name: "Drops empty entries", value: "DROP,,REJECT,", expected: []string{"DROP", "REJECT"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitList(tt.value))
		})
	}
}
