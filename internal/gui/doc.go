// Package gui implements the interactive Fyne application. It offers a
// Yiddish text field with a live phonetic preview, an accent selector and
// a speak button that synthesizes and plays the result.
package gui
