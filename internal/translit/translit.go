package translit

import (
	"strings"
	"sync"
)

// surroundingPunct is the punctuation stripped from a word before the
// override lookup. Matches the set the word table was curated against.
const surroundingPunct = `.,!?;:"()[]{}`

// Transliterator converts Yiddish text to phonetic Latin script. Each
// instance owns independent copies of the seed tables, so instances never
// share state. Transliterate* calls may run concurrently; Add*Mapping takes
// the write lock and is immediately visible to subsequent calls.
type Transliterator struct {
	mu    sync.RWMutex
	chars map[rune]string
	words map[string]string
}

// Option customizes the seed tables at construction time.
type Option func(*Transliterator)

// WithCharMapping seeds or replaces a single character mapping.
func WithCharMapping(char rune, phonetic string) Option {
	return func(t *Transliterator) {
		t.chars[char] = phonetic
	}
}

// WithWordMapping seeds or replaces a single word override.
func WithWordMapping(word, phonetic string) Option {
	return func(t *Transliterator) {
		t.words[word] = phonetic
	}
}

// New creates a Transliterator populated with the built-in character and
// word tables. Construction does no I/O and cannot fail.
func New(opts ...Option) *Transliterator {
	t := &Transliterator{
		chars: seedCharacterTable(),
		words: seedWordTable(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TransliterateChar converts a single code point. Unmapped characters come
// back unchanged, so the function is total over all of Unicode.
func (t *Transliterator) TransliterateChar(char rune) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.charLocked(char)
}

// TransliterateWord converts a single whitespace-delimited token. If the
// token, stripped of surrounding punctuation, has a word override, that
// override is returned and the punctuation is dropped rather than
// reattached ("שלום," becomes "sholem"). Callers relying on trailing
// punctuation surviving an override hit will be surprised; the behavior is
// kept for compatibility with the curated table. Otherwise every character
// of the original token is converted individually and the result is
// whitespace-normalized.
func (t *Transliterator) TransliterateWord(word string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.wordLocked(word)
}

// Transliterate converts arbitrary Yiddish text. Words whose conversion
// comes out empty (e.g. bare vowel points) are dropped without leaving a
// stray space. Empty or all-whitespace input yields "".
func (t *Transliterator) Transliterate(text string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var parts []string
	for _, word := range strings.Fields(text) {
		if converted := t.wordLocked(word); converted != "" {
			parts = append(parts, converted)
		}
	}
	return strings.Join(parts, " ")
}

// AddWordMapping inserts or overwrites a word override on this instance.
// Any phonetic value is accepted, including the empty string.
func (t *Transliterator) AddWordMapping(word, phonetic string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.words[word] = phonetic
}

// AddCharMapping inserts or overwrites a character mapping on this instance.
func (t *Transliterator) AddCharMapping(char rune, phonetic string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.chars[char] = phonetic
}

// WordMappingCount reports the current number of word overrides.
func (t *Transliterator) WordMappingCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.words)
}

func (t *Transliterator) charLocked(char rune) string {
	if phonetic, ok := t.chars[char]; ok {
		return phonetic
	}
	return string(char)
}

func (t *Transliterator) wordLocked(word string) string {
	clean := strings.Trim(word, surroundingPunct)
	if phonetic, ok := t.words[clean]; ok {
		return phonetic
	}

	var b strings.Builder
	for _, char := range word {
		b.WriteString(t.charLocked(char))
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
