package teamcheck

// CLI defines the command line interface structure for Kong
type CLI struct {
	LogLevel string `name:"log-level" help:"log level (trace|debug|info|warn|error)" env:"LOG_LEVEL"`
	Config   string `short:"c" help:"configuration file path" env:"TEAMCHECK_CONFIG"`

	Check   CheckCmd   `cmd:"" default:"withargs" help:"Read values and print YES or NO"`
	Version VersionCmd `cmd:"" help:"Show version"`
}

// CheckCmd represents the check command, run when no command is given
type CheckCmd struct {
	Input  string `short:"i" help:"input file path (default stdin)" env:"TEAMCHECK_INPUT"`
	Output string `short:"o" help:"output file path (default stdout)" env:"TEAMCHECK_OUTPUT"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Options merges the config file with the flags. Flags win over the file.
func (cli *CLI) Options() (*Config, error) {
	c, err := LoadConfig(cli.Config)
	if err != nil {
		return nil, err
	}
	c.Override(&Config{
		Input:    cli.Check.Input,
		Output:   cli.Check.Output,
		LogLevel: cli.LogLevel,
	})
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return c, c.validate()
}
