package audio

import "sort"

// Accent describes an espeak-ng voice preset that approximates a regional
// Yiddish accent. Historical Yiddish pronunciation sits closest to German
// and the Eastern European languages, so those voices read the phonetic
// output far more convincingly than a plain English voice.
type Accent struct {
	Voice       string // espeak-ng voice code
	Name        string
	Description string
	Speed       int // words per minute
	Pitch       int // 0 to 99
}

// accentPresets maps accent names to their espeak-ng settings.
var accentPresets = map[string]Accent{
	"german": {
		Voice:       "de",
		Name:        "German (Most Authentic)",
		Description: "German accent - closest to historical Yiddish",
		Speed:       140,
		Pitch:       45,
	},
	"polish": {
		Voice:       "pl",
		Name:        "Polish (Eastern European)",
		Description: "Polish accent - Eastern European Yiddish communities",
		Speed:       125,
		Pitch:       48,
	},
	"russian": {
		Voice:       "ru",
		Name:        "Russian (Eastern European)",
		Description: "Russian accent - Slavic influence",
		Speed:       130,
		Pitch:       42,
	},
	"hungarian": {
		Voice:       "hu",
		Name:        "Hungarian (Central European)",
		Description: "Hungarian accent - Central European communities",
		Speed:       145,
		Pitch:       50,
	},
	"dutch": {
		Voice:       "nl",
		Name:        "Dutch (Germanic)",
		Description: "Dutch accent - Germanic language family",
		Speed:       150,
		Pitch:       47,
	},
	"english": {
		Voice:       "en",
		Name:        "English (Fallback)",
		Description: "English accent - less authentic but widely supported",
		Speed:       150,
		Pitch:       50,
	},
}

// DefaultAccent is used when no accent is requested.
const DefaultAccent = "german"

// LookupAccent returns the preset for the given accent name. Unknown names
// fall back to the default accent.
func LookupAccent(name string) (Accent, bool) {
	if accent, ok := accentPresets[name]; ok {
		return accent, true
	}
	return accentPresets[DefaultAccent], false
}

// AccentNames returns all accent names in sorted order.
func AccentNames() []string {
	names := make([]string, 0, len(accentPresets))
	for name := range accentPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultAccentVoice returns the espeak voice code of the default accent.
func DefaultAccentVoice() string {
	return accentPresets[DefaultAccent].Voice
}
