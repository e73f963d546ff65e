package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexflint/go-arg"
	"github.com/stretchr/testify/require"

	"jsonq.mleku.dev/config"
)

func testConfig() *config.C {
	return &config.C{AppName: "jsonq", Delimiter: `"`, LogLevel: "info"}
}

func parse(t *testing.T, argv ...string) *Args {
	t.Helper()
	var a Args
	p, err := arg.NewParser(arg.Config{}, &a)
	require.NoError(t, err)
	require.NoError(t, p.Parse(argv))
	return &a
}

func run(t *testing.T, cfg *config.C, stdin string, argv ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Run(parse(t, argv...), cfg, strings.NewReader(stdin),
		&out))
	return out.String()
}

func TestQuote(t *testing.T) {
	got := run(t, testConfig(), "", "quote", `base64/with/forward/slash`,
		`base64\/with\/forward\/slash`)
	require.Equal(t, `"base64\/with\/forward\/slash"`+"\n"+
		`"base64\\\/with\\\/forward\\\/slash"`+"\n", got)
}

func TestUnquoteStdin(t *testing.T) {
	got := run(t, testConfig(), "\"a\\/b\"\r\nplain\\/\n", "unquote")
	require.Equal(t, "a/b\nplain\\/\n", got)
}

func TestRaw(t *testing.T) {
	got := run(t, testConfig(), "", "raw", `"a\/b"`, `a/b`)
	require.Equal(t, "\"a/b\"\t\"a\\/b\"\na/b\t\"a\\/b\"\n", got)
}

func TestString(t *testing.T) {
	got := run(t, testConfig(), "", "string", "--default", "hello",
		`"55b2C9AZ\\\/WxhTsrLIQFA1hN9YAA"`)
	require.Equal(t,
		`55b2C9AZ\/WxhTsrLIQFA1hN9YAA`+"\t"+`"55b2C9AZ\\\/WxhTsrLIQFA1hN9YAA"`+"\n",
		got)
}

func TestStringUnset(t *testing.T) {
	got := run(t, testConfig(), "", "string", "--default", "hello", "--unset")
	require.Equal(t, "hello\t\"\"\n", got)
}

func TestHexAndDelimiter(t *testing.T) {
	cfg := testConfig()
	cfg.Delimiter = "'"
	cfg.Hex = true
	got := run(t, cfg, "", "quote", "/")
	require.Equal(t, `'\/'`+"\t275c2f27\n", got)
}

func TestEnv(t *testing.T) {
	got := run(t, testConfig(), "", "env")
	require.True(t, strings.HasPrefix(got, "#!/usr/bin/env bash\n"))
	require.Contains(t, got, `export JSONQ_DELIMITER='"'`)
}

func TestNoCommand(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, Run(&Args{}, testConfig(), strings.NewReader(""), &out))
}
