package domain

import "testing"

func TestPhrase_WithMnemonic_DoesNotAlias(t *testing.T) {
	t.Parallel()

	orig := Phrase{
		English:  "hello",
		Mnemonic: "old",
		Examples: []ExampleSentence{{Thai: "a"}, {Thai: "b"}},
	}
	repaired := orig.WithMnemonic("new")

	if orig.Mnemonic != "old" {
		t.Errorf("original mnemonic mutated: %q", orig.Mnemonic)
	}
	if repaired.Mnemonic != "new" {
		t.Errorf("repaired mnemonic = %q, want new", repaired.Mnemonic)
	}
	repaired.Examples[0].Thai = "changed"
	if orig.Examples[0].Thai != "a" {
		t.Error("examples slice shared between original and copy")
	}
}

func TestFoldKey(t *testing.T) {
	t.Parallel()

	if got := FoldKey("  Hello World "); got != "hello world" {
		t.Errorf("FoldKey = %q", got)
	}
	if FoldKey("HELLO") != FoldKey("hello") {
		t.Error("FoldKey should be case-insensitive")
	}
}
