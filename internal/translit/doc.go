// Package translit converts Yiddish text written in Hebrew script into a
// phonetic Latin approximation suitable for text-to-speech engines with no
// native Yiddish support. It combines a per-code-point character map with a
// curated whole-word override table; overrides win for exact matches, and
// characters without a mapping pass through unchanged.
package translit
