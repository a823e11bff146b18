package jsoncedit

import (
	"strings"
	"testing"
)

func TestLocateKeyBasic(t *testing.T) {
	doc := []byte("{\n  \"alpha\": 1,\n  \"beta\": [1, 2]\n}")

	loc, ok := LocateKey(doc, "beta")
	if !ok {
		t.Fatalf("beta not found")
	}
	if got := string(doc[loc.KeyStart : loc.KeyStart+6]); got != `"beta"` {
		t.Errorf("KeyStart points at %q", got)
	}
	if doc[loc.ValueStart] != '[' {
		t.Errorf("ValueStart points at %q, want [", doc[loc.ValueStart])
	}
}

func TestLocateKeyColonWhitespace(t *testing.T) {
	for _, doc := range []string{
		`{"k":1}`,
		`{"k" : 1}`,
		"{\"k\"\n  :\n  1}",
	} {
		loc, ok := LocateKey([]byte(doc), "k")
		if !ok {
			t.Fatalf("key not found in %q", doc)
		}
		if doc[loc.ValueStart] != '1' {
			t.Errorf("doc %q: ValueStart at %q, want 1", doc, doc[loc.ValueStart])
		}
	}
}

func TestLocateKeyAbsent(t *testing.T) {
	if _, ok := LocateKey([]byte(`{"a": 1}`), "k"); ok {
		t.Errorf("found key that does not exist")
	}
	if _, ok := LocateKey(nil, "k"); ok {
		t.Errorf("found key in empty document")
	}
}

// Key text inside an unrelated string value must never match, even for keys
// with dots like the VS Code setting name.
func TestLocateKeyIgnoresStringContents(t *testing.T) {
	doc := []byte(`{
  "docs": "see https://example.com/claudeCode.environmentVariables for help",
  "claudeCode.environmentVariables": []
}`)
	loc, ok := LocateKey(doc, "claudeCode.environmentVariables")
	if !ok {
		t.Fatalf("real key not found")
	}
	wantAt := strings.LastIndex(string(doc), `"claudeCode.environmentVariables"`)
	if loc.KeyStart != wantAt {
		t.Errorf("KeyStart = %d, want %d (the real declaration)", loc.KeyStart, wantAt)
	}

	// With no real declaration present, the string occurrence alone is no match.
	doc = []byte(`{"docs": "the claudeCode.environmentVariables setting"}`)
	if _, ok := LocateKey(doc, "claudeCode.environmentVariables"); ok {
		t.Errorf("matched key text inside a string value")
	}
}

func TestLocateKeyIgnoresEscapedQuotes(t *testing.T) {
	doc := []byte(`{"desc": "quoted \"k\": here", "k": 1}`)
	loc, ok := LocateKey(doc, "k")
	if !ok {
		t.Fatalf("key not found")
	}
	if doc[loc.ValueStart] != '1' {
		t.Errorf("ValueStart at %q, want 1", doc[loc.ValueStart])
	}
}

func TestLocateKeyIgnoresComments(t *testing.T) {
	doc := []byte("{\n  // \"k\": 1,\n  /* \"k\": 2, */\n  \"k\": 3\n}")
	loc, ok := LocateKey(doc, "k")
	if !ok {
		t.Fatalf("key not found")
	}
	if doc[loc.ValueStart] != '3' {
		t.Errorf("matched a commented-out declaration, value byte %q", doc[loc.ValueStart])
	}
}

func TestLocateKeyIgnoresNestedObjects(t *testing.T) {
	doc := []byte(`{"outer": {"k": 1}, "k": 2}`)
	loc, ok := LocateKey(doc, "k")
	if !ok {
		t.Fatalf("key not found")
	}
	if doc[loc.ValueStart] != '2' {
		t.Errorf("matched nested key, value byte %q", doc[loc.ValueStart])
	}
}

func TestLocateKeyFirstOfDuplicates(t *testing.T) {
	doc := []byte(`{"k": 1, "k": 2}`)
	loc, ok := LocateKey(doc, "k")
	if !ok {
		t.Fatalf("key not found")
	}
	if doc[loc.ValueStart] != '1' {
		t.Errorf("acted on a later duplicate, value byte %q", doc[loc.ValueStart])
	}
}

func TestLocateKeyTruncatedAfterColon(t *testing.T) {
	if _, ok := LocateKey([]byte(`{"k":`), "k"); ok {
		t.Errorf("reported a location with no value present")
	}
}
