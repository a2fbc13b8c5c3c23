package config

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"

	"github.com/philipp01105/sitelog/core"
	"github.com/philipp01105/sitelog/formatter"
	"github.com/philipp01105/sitelog/registry"
	"github.com/philipp01105/sitelog/sink"
)

// Flags holds CLI flag names for the logging configuration, allowing
// callers to customize flag names while keeping sensible defaults via
// [New].
type Flags struct {
	Level     string
	Pattern   string
	Output    string
	Caller    string
	AdminAddr string
}

// Config holds the process-wide logging defaults the registry consumes
// at startup. Values come from a YAML file, CLI flags, or both; flags
// win where both are given.
type Config struct {
	// Level is the default severity for new handles.
	Level string `yaml:"level"`
	// Pattern is the output pattern for the shared sink.
	Pattern string `yaml:"pattern"`
	// Output is the sink target: "stderr", "stdout", or a file path.
	Output string `yaml:"output"`
	// Caller enables caller capture on every handle.
	Caller bool `yaml:"caller"`
	// AdminAddr is the listen address for the level-control API.
	AdminAddr string `yaml:"admin_addr"`

	flags Flags
}

// New returns a Config with process defaults and standard flag names.
func New() *Config {
	return &Config{
		Level:     core.InfoLevel.String(),
		Pattern:   formatter.DefaultPattern,
		Output:    "stderr",
		AdminAddr: "localhost:9901",
		flags: Flags{
			Level:     "log-level",
			Pattern:   "log-pattern",
			Output:    "log-output",
			Caller:    "log-caller",
			AdminAddr: "admin-addr",
		},
	}
}

// RegisterFlags adds the logging flags to the given flag set.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.flags.Level, c.Level,
		"default log level, one of: trace, debug, info, warn, error, critical, off")
	flags.StringVar(&c.Pattern, c.flags.Pattern, c.Pattern,
		"log output pattern")
	flags.StringVar(&c.Output, c.flags.Output, c.Output,
		"log output target: stderr, stdout, or a file path")
	flags.BoolVar(&c.Caller, c.flags.Caller, c.Caller,
		"capture caller file/line on every log entry")
	flags.StringVar(&c.AdminAddr, c.flags.AdminAddr, c.AdminAddr,
		"listen address for the logger admin API")
}

// LoadFile merges values from a YAML file into c. Fields already set
// by a changed flag on fs keep their flag value; pass nil to let the
// file set everything.
func (c *Config) LoadFile(path string, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	changed := func(name string) bool {
		return fs != nil && fs.Changed(name)
	}
	if file.Level != "" && !changed(c.flags.Level) {
		c.Level = file.Level
	}
	if file.Pattern != "" && !changed(c.flags.Pattern) {
		c.Pattern = file.Pattern
	}
	if file.Output != "" && !changed(c.flags.Output) {
		c.Output = file.Output
	}
	if file.Caller && !changed(c.flags.Caller) {
		c.Caller = true
	}
	if file.AdminAddr != "" && !changed(c.flags.AdminAddr) {
		c.AdminAddr = file.AdminAddr
	}
	return nil
}

// BuildRegistry validates the configuration and constructs the shared
// sink and the registry over it. The returned closer owns the output
// file when one was opened.
func (c *Config) BuildRegistry() (*registry.Registry, io.Closer, error) {
	level, err := core.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch c.Output {
	// Console targets hide the file's Sync method: fsync on a terminal
	// fails with EINVAL, and the buffered flush is enough there.
	case "stderr", "":
		w = struct{ io.Writer }{os.Stderr}
	case "stdout":
		w = struct{ io.Writer }{os.Stdout}
	default:
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log output: %w", err)
		}
		w = f
		closer = f
	}

	s := sink.NewWriterSink(w, formatter.NewPattern(c.Pattern))
	reg := registry.New(s,
		registry.WithDefaultLevel(level),
		registry.WithCaller(c.Caller),
	)
	return reg, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
