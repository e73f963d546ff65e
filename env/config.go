// Package env is an implementation of the env.Source interface from
// go-simpler.org that reads a file of KEY=value lines.
package env

import (
	"os"
	"strings"

	"jsonq.mleku.dev/chk"
)

// Env is a key/value map used to represent environment variables.
type Env map[string]string

// GetEnv reads a file of KEY=value lines in shell format, as written by
// keyvalue.PrintEnv. Blank lines, comments and a leading `export` are
// skipped, values may be single quoted.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.E(err) {
		return
	}
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		env[strings.TrimSpace(k)] = shellUnquote(strings.TrimSpace(v))
	}
	return
}

// shellUnquote undoes single quoting and backslash escapes outside quotes.
func shellUnquote(v string) string {
	var sb strings.Builder
	var inQuote bool
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
		case c == '\\' && !inQuote && i+1 < len(v):
			i++
			sb.WriteByte(v[i])
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// LookupEnv returns the value for the key from the file, falling back to the
// process environment for keys the file does not set.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	if value, ok = env[key]; ok {
		return
	}
	return os.LookupEnv(key)
}
