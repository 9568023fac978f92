package lexer

import "testing"

func words(t *testing.T, l *Lexer) []string {
	t.Helper()
	var out []string
	for {
		w, ok := l.ReadWord()
		if !ok {
			break
		}
		out = append(out, w)
	}
	return out
}

func TestSplitsOnWhitespaceAndParens(t *testing.T) {
	l := New("LET  x (ADD) 1 2")
	got := words(t, l)
	want := []string{"LET", "x", "ADD", "1", "2"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestQuotedSpanKeepsWhitespace(t *testing.T) {
	l := New(`LET greeting "hello world"`)
	got := words(t, l)
	want := []string{"LET", "greeting", "hello world"}
	if len(got) != 3 || got[2] != want[2] {
		t.Fatalf("got %v", got)
	}
}

func TestSingleAndDoubleQuotesAreIndependent(t *testing.T) {
	l := New(`x 'it "quotes" fine'`)
	got := words(t, l)
	if len(got) != 2 || got[1] != `it "quotes" fine` {
		t.Fatalf("got %v", got)
	}
}

func TestGotoEOLStopsAtNewline(t *testing.T) {
	l := New("a b\nc")
	l.ReadWord()
	l.ReadWord()
	l.GotoEOL()
	got, ok := l.ReadWord()
	if !ok || got != "c" {
		t.Fatalf("ReadWord after GotoEOL = %q,%v", got, ok)
	}
}

func TestEmptyInputIsEOF(t *testing.T) {
	l := New("")
	if _, ok := l.ReadWord(); ok {
		t.Fatal("expected no word from empty input")
	}
	if !l.AtEOF() {
		t.Fatal("expected AtEOF after reading empty input")
	}
}

func TestLooksLikeIdentifier(t *testing.T) {
	cases := map[string]bool{
		"foo_bar": true,
		"Foo2":    true,
		"2foo":    false,
		"":        false,
		"foo-bar": false,
	}
	for in, want := range cases {
		if got := LooksLikeIdentifier(in); got != want {
			t.Errorf("LooksLikeIdentifier(%q) = %v, want %v", in, got, want)
		}
	}
}
