// Package lexicon persists user-taught word pronunciations in a SQLite
// database. Entries learned with the --learn flag survive across runs and
// are layered on top of the built-in word table at startup.
package lexicon
