package audio

import "testing"

func TestLookupAccent(t *testing.T) {
	accent, ok := LookupAccent("polish")
	if !ok {
		t.Error("LookupAccent(polish) reported unknown accent")
	}
	if accent.Voice != "pl" {
		t.Errorf("Expected voice 'pl', got '%s'", accent.Voice)
	}
	if accent.Speed != 125 {
		t.Errorf("Expected speed 125, got %d", accent.Speed)
	}
}

func TestLookupAccent_UnknownFallsBack(t *testing.T) {
	accent, ok := LookupAccent("martian")
	if ok {
		t.Error("LookupAccent(martian) should report unknown accent")
	}
	if accent.Voice != "de" {
		t.Errorf("Unknown accent should fall back to german voice, got '%s'", accent.Voice)
	}
}

func TestAccentNames(t *testing.T) {
	names := AccentNames()

	if len(names) == 0 {
		t.Fatal("AccentNames() returned empty slice")
	}

	expected := []string{"german", "polish", "russian", "hungarian", "dutch", "english"}
	for _, want := range expected {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected accent %s not found in list", want)
		}
	}

	// Sorted output
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("AccentNames() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestDefaultAccentVoice(t *testing.T) {
	if got := DefaultAccentVoice(); got != "de" {
		t.Errorf("DefaultAccentVoice() = %q, want 'de'", got)
	}
}
