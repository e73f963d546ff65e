package text

import (
	"fmt"
	"testing"
)

func TestQuote(t *testing.T) {
	if got := Quote(nil, '"', []byte(base64)); string(got) != quotedEscaped {
		t.Fatalf("got %s expected %s", got, quotedEscaped)
	}
	if got := Quote(nil, '"', []byte(escaped)); string(got) !=
		`"`+escapedTwice+`"` {
		t.Fatalf("got %s", got)
	}
	if got := Quote(nil, '"', nil); string(got) != `""` {
		t.Fatalf("empty quote got %s", got)
	}
	if got := Quote(nil, '\'', []byte("a/b")); string(got) != `'a\/b'` {
		t.Fatalf("single quote delimiter got %s", got)
	}
}

func TestIsQuoted(t *testing.T) {
	for i, tc := range []struct {
		in    string
		delim byte
		want  bool
	}{
		{``, '"', false},
		{`"`, '"', false},
		{`""`, '"', true},
		{quotedBase64, '"', true},
		{base64, '"', false},
		{`"abc`, '"', false},
		{`abc"`, '"', false},
		{`'abc'`, '"', false},
		{`'abc'`, '\'', true},
	} {
		if got := IsQuoted([]byte(tc.in), tc.delim); got != tc.want {
			t.Fatalf("%d: IsQuoted(%q, %q) = %v", i, tc.in, tc.delim, got)
		}
	}
}

func TestDequote(t *testing.T) {
	if got := Dequote(nil, '"', []byte(quotedEscaped)); string(got) != base64 {
		t.Fatalf("got %s expected %s", got, base64)
	}
	// not quoted-shaped input is taken as is, escapes and all
	if got := Dequote(nil, '"', []byte(escaped)); string(got) != escaped {
		t.Fatalf("got %s expected %s", got, escaped)
	}
	if got := Dequote(nil, '"', []byte(`"`)); string(got) != `"` {
		t.Fatalf("got %s", got)
	}
}

func TestAppendHexFromBinary(t *testing.T) {
	if got := AppendHexFromBinary(nil, []byte(`"\/"`), false); string(got) !=
		"225c2f22" {
		t.Fatalf("got %s", got)
	}
	if got := AppendHexFromBinary(nil, []byte{0xab}, true); string(got) !=
		`"ab"` {
		t.Fatalf("got %s", got)
	}
}

func ExampleQuote() {
	fmt.Printf("%s\n", Quote(nil, DefaultDelimiter, []byte(base64)))
	fmt.Printf("%s\n", Quote(nil, DefaultDelimiter, []byte(escaped)))
	// Output:
	// "base64\/with\/forward\/slash"
	// "base64\\\/with\\\/forward\\\/slash"
}
