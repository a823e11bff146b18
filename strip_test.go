package jsoncedit

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestStripCommentsLine(t *testing.T) {
	doc := []byte("{\n  // comment\n  \"key\": \"value\"\n}")
	stripped := StripComments(doc)
	if !gjson.ValidBytes(stripped) {
		t.Fatalf("stripped output not valid JSON: %s", stripped)
	}
	if got := gjson.GetBytes(stripped, "key").String(); got != "value" {
		t.Errorf("key = %q, want value", got)
	}
}

func TestStripCommentsBlock(t *testing.T) {
	doc := []byte("{\n  /* block\n     comment */\n  \"key\": \"value\"\n}")
	stripped := StripComments(doc)
	if !gjson.ValidBytes(stripped) {
		t.Fatalf("stripped output not valid JSON: %s", stripped)
	}
	if got := gjson.GetBytes(stripped, "key").String(); got != "value" {
		t.Errorf("key = %q, want value", got)
	}
}

func TestStripCommentsPreservesStrings(t *testing.T) {
	doc := []byte(`{"url": "https://example.com", "glob": "a/*b*/c", "esc": "q\"//x"}`)
	stripped := StripComments(doc)
	if string(stripped) != string(doc) {
		t.Errorf("comment-free document changed:\n got %s\nwant %s", stripped, doc)
	}
}
