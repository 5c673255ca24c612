package fnvhash

import "testing"

func TestStringMatchesStreaming(t *testing.T) {
	h := New()
	_, _ = h.Write([]byte("transform"))
	if got, want := String("transform"), h.Sum64(); got != want {
		t.Errorf("String = %#x, want %#x", got, want)
	}
	// FNV-1a offset basis.
	if got := String(""); got != 0xcbf29ce484222325 {
		t.Errorf("String(\"\") = %#x, want offset basis", got)
	}
}

func TestWriteStringIsLengthPrefixed(t *testing.T) {
	a, b := New(), New()
	WriteString(a, "ab")
	WriteString(a, "c")
	WriteString(b, "a")
	WriteString(b, "bc")
	if a.Sum64() == b.Sum64() {
		t.Error("expected different hashes for different string splits")
	}
}
