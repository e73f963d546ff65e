// Package config is the environment driven configuration of the jsonq tool.
package config

import (
	"io"
	"os"

	"go-simpler.org/env"

	"jsonq.mleku.dev/chk"
	envfile "jsonq.mleku.dev/env"
	"jsonq.mleku.dev/errorf"
	"jsonq.mleku.dev/lol"
)

// EnvFileKey names a KEY=value file read in preference to the environment.
const EnvFileKey = "JSONQ_ENV_FILE"

// C is the configuration for jsonq.
type C struct {
	AppName   string `env:"JSONQ_APP_NAME" default:"jsonq"`
	Delimiter string `env:"JSONQ_DELIMITER" default:"\"" usage:"single byte that opens and closes a string"`
	LogLevel  string `env:"JSONQ_LOG_LEVEL" default:"info" usage:"off, fatal, error, warn, info, debug or trace"`
	Hex       bool   `env:"JSONQ_HEX" default:"false" usage:"also print wire output as hex"`
	Profile   bool   `env:"JSONQ_PROFILE" default:"false" usage:"write a CPU profile to the working directory"`
}

// New loads the configuration from the environment, or from the file named by
// JSONQ_ENV_FILE if that is set.
func New() (c *C, err error) { return Load(os.Getenv(EnvFileKey)) }

// Load reads the configuration with values from the env file at path taking
// precedence over the process environment. An empty path reads only the
// environment.
func Load(path string) (c *C, err error) {
	c = &C{}
	opts := &env.Options{SliceSep: ","}
	if path != "" {
		var e envfile.Env
		if e, err = envfile.GetEnv(path); chk.E(err) {
			return
		}
		opts.Source = e
	}
	if err = env.Load(c, opts); chk.E(err) {
		return
	}
	if err = c.Validate(); err != nil {
		return
	}
	return
}

// Validate checks the delimiter is exactly one byte and the log level is known.
func (c *C) Validate() (err error) {
	if len(c.Delimiter) != 1 {
		return errorf.E("delimiter must be a single byte, got %q", c.Delimiter)
	}
	for _, name := range lol.LevelNames {
		if c.LogLevel == name {
			return
		}
	}
	return errorf.E("unknown log level %q", c.LogLevel)
}

// Delim returns the configured delimiter byte.
func (c *C) Delim() byte { return c.Delimiter[0] }

// PrintUsage writes the environment variables and their defaults.
func PrintUsage(c *C, w io.Writer) { env.Usage(c, w, nil) }
