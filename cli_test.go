package teamcheck

import (
	"reflect"
	"testing"

	"github.com/alecthomas/kong"
)

func TestCLIParsing(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		envs        map[string]string
		expectedCmd string
		expected    *CLI
	}{
		{
			name:        "no command runs check",
			args:        []string{},
			expectedCmd: "check",
			expected:    &CLI{},
		},
		{
			name:        "check command",
			args:        []string{"check"},
			expectedCmd: "check",
			expected:    &CLI{},
		},
		{
			name:        "check flags without command",
			args:        []string{"-i", "input.txt", "-o", "output.txt"},
			expectedCmd: "check",
			expected: &CLI{
				Check: CheckCmd{
					Input:  "input.txt",
					Output: "output.txt",
				},
			},
		},
		{
			name:        "check command with all flags",
			args:        []string{"--log-level", "debug", "-c", "teamcheck.yaml", "check", "--input", "in.txt", "--output", "out.txt"},
			expectedCmd: "check",
			expected: &CLI{
				LogLevel: "debug",
				Config:   "teamcheck.yaml",
				Check: CheckCmd{
					Input:  "in.txt",
					Output: "out.txt",
				},
			},
		},
		{
			name: "check command with environment variables",
			args: []string{"check"},
			envs: map[string]string{
				"LOG_LEVEL":        "trace",
				"TEAMCHECK_CONFIG": "/env/teamcheck.yaml",
				"TEAMCHECK_INPUT":  "/env/input.txt",
				"TEAMCHECK_OUTPUT": "/env/output.txt",
			},
			expectedCmd: "check",
			expected: &CLI{
				LogLevel: "trace",
				Config:   "/env/teamcheck.yaml",
				Check: CheckCmd{
					Input:  "/env/input.txt",
					Output: "/env/output.txt",
				},
			},
		},
		{
			name:        "version command",
			args:        []string{"version"},
			expectedCmd: "version",
			expected:    &CLI{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envs {
				t.Setenv(key, value)
			}

			var cli CLI
			parser, err := kong.New(&cli)
			if err != nil {
				t.Fatalf("Failed to create kong parser: %v", err)
			}

			ctx, err := parser.Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cmdName := ctx.Command(); cmdName != tt.expectedCmd {
				t.Errorf("Command() = %v, want %v", cmdName, tt.expectedCmd)
			}
			if !reflect.DeepEqual(&cli, tt.expected) {
				t.Errorf("CLI = %+v, want %+v", cli, tt.expected)
			}
		})
	}
}

func TestCLIErrorCases(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "invalid command",
			args: []string{"invalid", "extra"},
		},
		{
			name: "unknown flag",
			args: []string{"check", "--verbose"},
		},
		{
			name: "input without value",
			args: []string{"check", "--input"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI
			parser, err := kong.New(&cli)
			if err != nil {
				t.Fatalf("Failed to create kong parser: %v", err)
			}

			_, err = parser.Parse(tt.args)
			if err == nil {
				t.Errorf("Expected error for args %v, but got none", tt.args)
			}
		})
	}
}
