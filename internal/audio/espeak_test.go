package audio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if config.Voice != "de" {
		t.Errorf("Expected default voice 'de', got '%s'", config.Voice)
	}

	if config.Speed != 150 {
		t.Errorf("Expected default speed 150, got %d", config.Speed)
	}

	if config.OutputDir != "./" {
		t.Errorf("Expected default output dir './', got '%s'", config.OutputDir)
	}
}

func TestNew(t *testing.T) {
	espeak, err := New(nil)
	if err != nil {
		if checkESpeakInstalled() != nil {
			t.Skip("espeak-ng not installed, skipping test")
		}
		t.Fatalf("New() failed: %v", err)
	}

	if espeak == nil {
		t.Fatal("New() returned nil ESpeak instance")
	}

	if espeak.config == nil {
		t.Fatal("ESpeak instance has nil config")
	}
}

func TestSetSpeed(t *testing.T) {
	espeak := &ESpeak{config: DefaultConfig()}

	tests := []struct {
		input    int
		expected int
	}{
		{150, 150}, // Normal speed
		{50, 80},   // Below minimum
		{500, 450}, // Above maximum
		{200, 200}, // Valid speed
	}

	for _, tt := range tests {
		espeak.SetSpeed(tt.input)
		if espeak.config.Speed != tt.expected {
			t.Errorf("SetSpeed(%d) resulted in speed %d, expected %d",
				tt.input, espeak.config.Speed, tt.expected)
		}
	}
}

func TestSetPitch(t *testing.T) {
	espeak := &ESpeak{config: DefaultConfig()}

	tests := []struct {
		input    int
		expected int
	}{
		{50, 50},
		{-10, 0},
		{150, 99},
	}

	for _, tt := range tests {
		espeak.SetPitch(tt.input)
		if espeak.config.Pitch != tt.expected {
			t.Errorf("SetPitch(%d) resulted in pitch %d, expected %d",
				tt.input, espeak.config.Pitch, tt.expected)
		}
	}
}

func TestGenerateAudio_EmptyText(t *testing.T) {
	if checkESpeakInstalled() != nil {
		t.Skip("espeak-ng not installed, skipping test")
	}

	espeak, err := New(nil)
	if err != nil {
		t.Fatalf("Failed to create ESpeak: %v", err)
	}

	err = espeak.GenerateAudio("", "test.wav")
	if err == nil {
		t.Error("GenerateAudio() with empty text should return error")
	}
}

func TestGenerateAudio_Integration(t *testing.T) {
	if checkESpeakInstalled() != nil {
		t.Skip("espeak-ng not installed, skipping integration test")
	}

	tempDir := t.TempDir()

	config := &ESpeakConfig{
		Voice:     "de",
		Speed:     140,
		Pitch:     45,
		Amplitude: 100,
		OutputDir: tempDir,
	}

	espeak, err := New(config)
	if err != nil {
		t.Fatalf("Failed to create ESpeak: %v", err)
	}

	// Phonetic output for "sholem aleykhem"
	outputFile := filepath.Join(tempDir, "test.wav")
	err = espeak.GenerateAudio("sholem aleykhem", outputFile)
	if err != nil {
		t.Fatalf("GenerateAudio() failed: %v", err)
	}

	info, err := os.Stat(outputFile)
	if err != nil {
		t.Fatalf("Output file not created: %v", err)
	}

	if info.Size() == 0 {
		t.Error("Output file is empty")
	}
}
