// Package processor contains the main word processing logic. It ties the
// transliteration engine, the pronunciation lexicon, the LLM backends and
// the audio providers together for single-word, batch and GUI modes.
package processor
