// Package keyvalue converts a go-simpler/env struct tagged configuration into a
// sortable slice of key-values, and prints them as a shell script that sets the
// variables, which env.GetEnv can read back.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"time"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV turns a struct with `env` keys into key/value pairs. Pass the struct,
// not a pointer to it. Fields without an env tag are skipped.
func EnvKV(cfg any) (m KVSlice) {
	t := reflect.TypeOf(cfg)
	v := reflect.ValueOf(cfg)
	for i := 0; i < t.NumField(); i++ {
		k, _, _ := strings.Cut(t.Field(i).Tag.Get("env"), ",")
		if k == "" {
			continue
		}
		var val string
		switch fv := v.Field(i).Interface().(type) {
		case string:
			val = fv
		case int, int64, int32, uint64, uint32, bool, time.Duration:
			val = fmt.Sprint(fv)
		case []string:
			val = strings.Join(fv, ",")
		}
		m = append(m, KV{k, val})
	}
	return
}

// ShellQuote wraps s in single quotes so any byte survives a shell, a single
// quote in s being closed, escaped and reopened.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// PrintEnv renders the key/values of a config to a provided io.Writer.
func PrintEnv(cfg any, printer io.Writer) {
	_, _ = fmt.Fprintln(printer, "#!/usr/bin/env bash")
	kvs := EnvKV(cfg)
	sort.Sort(kvs)
	for _, v := range kvs {
		_, _ = fmt.Fprintf(printer, "export %s=%s\n", v.Key, ShellQuote(v.Value))
	}
}
