package main

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"

	"jsonq.mleku.dev/config"
	"jsonq.mleku.dev/config/keyvalue"
	"jsonq.mleku.dev/json"
	"jsonq.mleku.dev/log"
	"jsonq.mleku.dev/text"
)

// TextArgs are the inputs of the commands that work on strings. With no
// positional arguments the lines of stdin are used.
type TextArgs struct {
	Text []string `arg:"positional" help:"strings to process, one per line from stdin if none are given"`
}

type StringArgs struct {
	TextArgs
	Default string `arg:"--default" help:"default value of the field"`
	Unset   bool   `arg:"--unset" help:"show the field without assigning anything to it"`
}

type EnvArgs struct{}

// Args is the command line of jsonq.
type Args struct {
	Quote     *TextArgs   `arg:"subcommand:quote" help:"escape once and wrap in the delimiter"`
	Unquote   *TextArgs   `arg:"subcommand:unquote" help:"strip the delimiters and unescape once, if quoted"`
	Raw       *TextArgs   `arg:"subcommand:raw" help:"decode into a raw element, print its value and wire form"`
	String    *StringArgs `arg:"subcommand:string" help:"decode into a string field, print its value and wire form"`
	Env       *EnvArgs    `arg:"subcommand:env" help:"print the configuration as a shell script"`
	Delimiter string      `arg:"-d,--delimiter" help:"override JSONQ_DELIMITER"`
	Hex       bool        `arg:"--hex" help:"also print wire output as hex"`
}

// Run executes the selected subcommand, reading stdin when a command was given
// no strings and writing results to out.
func Run(a *Args, cfg *config.C, stdin io.Reader, out io.Writer) (err error) {
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "writing output")
		}
	}()
	var targs *TextArgs
	var fn func(in []byte) (line []byte)
	d := cfg.Delim()
	switch {
	case a.Env != nil:
		keyvalue.PrintEnv(*cfg, w)
		return
	case a.Quote != nil:
		targs = a.Quote
		fn = func(in []byte) []byte {
			return wireLine(nil, cfg, text.Quote(nil, d, in))
		}
	case a.Unquote != nil:
		targs = a.Unquote
		fn = func(in []byte) []byte { return text.Dequote(nil, d, in) }
	case a.Raw != nil:
		targs = a.Raw
		fn = func(in []byte) []byte {
			r := &json.Raw{Delimiter: d}
			_, _ = r.Unmarshal(in)
			return element(cfg, r.Bytes(), r.Marshal(nil))
		}
	case a.String != nil:
		targs = &a.String.TextArgs
		if a.String.Unset {
			s := json.NewString(a.String.Default)
			s.Delimiter = d
			if _, err = w.Write(append(element(cfg, s.Bytes(), s.Marshal(nil)),
				'\n')); err != nil {
				return errors.Wrap(err, "writing output")
			}
			return
		}
		fn = func(in []byte) []byte {
			s := json.NewString(a.String.Default)
			s.Delimiter = d
			_, _ = s.Unmarshal(in)
			return element(cfg, s.Bytes(), s.Marshal(nil))
		}
	default:
		return errors.New("no command given")
	}
	return each(targs.Text, stdin, func(in []byte) (err error) {
		log.T.F("input %q", in)
		line := append(fn(in), '\n')
		if _, err = w.Write(line); err != nil {
			return errors.Wrap(err, "writing output")
		}
		return
	})
}

// each calls fn for every argument, or for every line of stdin if there are
// none.
func each(texts []string, stdin io.Reader, fn func(in []byte) error) (err error) {
	if len(texts) > 0 {
		for _, t := range texts {
			if err = fn([]byte(t)); err != nil {
				return
			}
		}
		return
	}
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if err = fn(bytes.TrimSuffix(sc.Bytes(), []byte{'\r'})); err != nil {
			return
		}
	}
	if err = sc.Err(); err != nil {
		return errors.Wrap(err, "reading stdin")
	}
	return
}

// element formats what a reader of an element sees and what it serializes to,
// tab separated.
func element(cfg *config.C, read, wire []byte) (line []byte) {
	line = append(line, read...)
	line = append(line, '\t')
	return wireLine(line, cfg, wire)
}

func wireLine(dst []byte, cfg *config.C, wire []byte) []byte {
	dst = append(dst, wire...)
	if cfg.Hex {
		dst = append(dst, '\t')
		dst = text.AppendHexFromBinary(dst, wire, false)
	}
	return dst
}
