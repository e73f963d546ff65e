package lol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetLogLevel(t *testing.T) {
	for name, want := range map[string]int{
		"off": Off, "error": Error, "DEBUG": Debug, " trace ": Trace,
		"nonsense": Info,
	} {
		if got := GetLogLevel(name); got != want {
			t.Fatalf("GetLogLevel(%q) = %d, expected %d", name, got, want)
		}
	}
}

func TestPrinterLevels(t *testing.T) {
	defer SetLoggers(int(Level.Load()))
	NoTimeStamp.Store(true)
	defer NoTimeStamp.Store(false)
	var buf bytes.Buffer
	l, c, e := New(&buf)
	SetLoggers(Warn)
	l.D.F("hidden %d", 1)
	l.W.F("shown %d", 2)
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug printed at warn level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown 2") ||
		!strings.Contains(buf.String(), "log_test.go") {
		t.Fatalf("missing message or location: %s", buf.String())
	}
	buf.Reset()
	if c.E(nil) {
		t.Fatal("nil error reported")
	}
	if !c.E(errors.New("boom")) || !strings.Contains(buf.String(), "boom") {
		t.Fatalf("error not reported: %s", buf.String())
	}
	buf.Reset()
	if !c.D(errors.New("quiet")) || buf.Len() != 0 {
		t.Fatalf("check below level should return true and print nothing: %s",
			buf.String())
	}
	if err := e.T("made %s", "here"); err == nil || err.Error() != "made here" {
		t.Fatalf("got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("trace error printed at warn level: %s", buf.String())
	}
}
