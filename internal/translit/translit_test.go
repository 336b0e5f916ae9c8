package translit

import (
	"fmt"
	"sync"
	"testing"
)

func TestTransliterateChar(t *testing.T) {
	tr := New()

	tests := []struct {
		name string
		char rune
		want string
	}{
		{"basic letter", 'ב', "b"},
		{"digraph letter", 'ש', "sh"},
		{"final form defaults to kh", 'ך', "kh"},
		{"final tsadi", 'ץ', "ts"},
		{"vowel point", 'ַ', "a"},
		{"silent shva", 'ְ', ""},
		{"unmapped Latin passes through", 'Z', "Z"},
		{"unmapped Cyrillic passes through", 'ж', "ж"},
		{"digit maps to itself", '7', "7"},
		{"maqaf becomes hyphen", '־', "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.TransliterateChar(tt.char); got != tt.want {
				t.Errorf("TransliterateChar(%q) = %q, want %q", tt.char, got, tt.want)
			}
		})
	}
}

func TestTransliterateWord(t *testing.T) {
	tr := New()

	tests := []struct {
		name string
		word string
		want string
	}{
		{"word override", "שלום", "sholem"},
		{"override with trailing comma dropped", "שלום,", "sholem"},
		{"override with surrounding brackets dropped", "(עליכם)", "aleykhem"},
		{"character fallback", "גייט", "giit"},
		{"fallback keeps inner punctuation", "עס?", "es?"},
		{"diacritics only collapse to empty", "ְ", ""},
		{"latin word passes through", "hello", "hello"},
		{"empty word", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.TransliterateWord(tt.word); got != tt.want {
				t.Errorf("TransliterateWord(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestTransliterate(t *testing.T) {
	tr := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "greeting sentence",
			text: "שלום עליכם, ווי גייט עס?",
			want: "sholem aleykhem vi giit es?",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "whitespace only",
			text: "   \t\n  ",
			want: "",
		},
		{
			name: "latin text whitespace collapse",
			text: " a   b ",
			want: "a b",
		},
		{
			name: "empty words leave no extra space",
			text: "א ְ ב",
			want: "a b",
		},
		{
			name: "override beats character mapping",
			text: "פון",
			want: "fun",
		},
		{
			name: "mixed overrides and fallback",
			text: "איך האב א הויז",
			want: "ikh hab a hoyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Transliterate(tt.text); got != tt.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTransliterate_Deterministic(t *testing.T) {
	tr := New()
	text := "שלום עליכם, ווי גייט עס?"

	first := tr.Transliterate(text)
	for i := 0; i < 5; i++ {
		if got := tr.Transliterate(text); got != first {
			t.Fatalf("Transliterate not deterministic: run %d got %q, first run %q", i, got, first)
		}
	}
}

func TestTransliterate_OwnOutputIsStable(t *testing.T) {
	tr := New()

	// Re-running on Latin output must not change whitespace handling
	out := tr.Transliterate("שלום עליכם")
	if again := tr.Transliterate(out); again != out {
		t.Errorf("Transliterate(%q) = %q, expected it unchanged", out, again)
	}
}

func TestAddWordMapping(t *testing.T) {
	tr := New()

	// Overwrite an existing entry
	if got := tr.TransliterateWord("פון"); got != "fun" {
		t.Fatalf("precondition failed: TransliterateWord(פון) = %q", got)
	}
	tr.AddWordMapping("פון", "pun")
	if got := tr.TransliterateWord("פון"); got != "pun" {
		t.Errorf("after AddWordMapping, TransliterateWord(פון) = %q, want %q", got, "pun")
	}

	// Brand new entry, visible to full-text calls too
	tr.AddWordMapping("טשאלנט", "tshalnt")
	if got := tr.Transliterate("טשאלנט"); got != "tshalnt" {
		t.Errorf("Transliterate(טשאלנט) = %q, want %q", got, "tshalnt")
	}
}

func TestAddCharMapping(t *testing.T) {
	tr := New()

	tr.AddCharMapping('ך', "k")
	if got := tr.TransliterateChar('ך'); got != "k" {
		t.Errorf("after AddCharMapping, TransliterateChar(ך) = %q, want %q", got, "k")
	}
}

func TestMappingsArePerInstance(t *testing.T) {
	a := New()
	b := New()

	a.AddWordMapping("פון", "changed")
	if got := b.TransliterateWord("פון"); got != "fun" {
		t.Errorf("mutation leaked across instances: TransliterateWord(פון) = %q", got)
	}
}

func TestConstructorOptions(t *testing.T) {
	tr := New(
		WithCharMapping('ך', "k"),
		WithWordMapping("טשאלנט", "tshalnt"),
	)

	if got := tr.TransliterateChar('ך'); got != "k" {
		t.Errorf("WithCharMapping not applied: got %q", got)
	}
	if got := tr.TransliterateWord("טשאלנט"); got != "tshalnt" {
		t.Errorf("WithWordMapping not applied: got %q", got)
	}
}

func TestConcurrentReads(t *testing.T) {
	tr := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := tr.Transliterate(fmt.Sprintf("שלום %d", n))
				if got == "" {
					t.Errorf("unexpected empty result")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
