package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/yidspeak/internal"
	"codeberg.org/snonux/yidspeak/internal/audio"
	"codeberg.org/snonux/yidspeak/internal/batch"
	"codeberg.org/snonux/yidspeak/internal/cli"
	"codeberg.org/snonux/yidspeak/internal/gui"
	"codeberg.org/snonux/yidspeak/internal/lexicon"
	"codeberg.org/snonux/yidspeak/internal/llm"
	"codeberg.org/snonux/yidspeak/internal/translit"
)

// Processor handles the main word processing logic
type Processor struct {
	flags   *cli.Flags
	trans   *translit.Transliterator
	llm     llm.Transliterator
	lexicon *lexicon.Store
}

// NewProcessor creates a new word processor
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	var opts []translit.Option
	if flags.FinalKhofK {
		opts = append(opts, translit.WithCharMapping('ך', "k"))
	}

	p := &Processor{
		flags: flags,
		trans: translit.New(opts...),
	}

	// Layer the persistent lexicon over the built-in word table. A broken
	// lexicon must not stop transliteration.
	if err := p.loadLexicon(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: lexicon unavailable: %v\n", err)
	}

	if flags.UseLLM {
		transliterator, err := llm.New(&llm.Config{
			Provider:  flags.LLMProvider,
			OpenAIKey: cli.GetOpenAIKey(),
			GeminiKey: cli.GetGeminiKey(),
			Model:     flags.LLMModel,
		})
		if err != nil {
			return nil, err
		}
		p.llm = transliterator
	}

	return p, nil
}

// loadLexicon opens the pronunciation lexicon and merges its entries into
// the word table
func (p *Processor) loadLexicon() error {
	path, err := lexicon.DefaultPath()
	if err != nil {
		return err
	}
	if viper.IsSet("lexicon.path") {
		path = viper.GetString("lexicon.path")
	}

	store, err := lexicon.Open(path)
	if err != nil {
		return err
	}
	p.lexicon = store

	entries, err := store.All()
	if err != nil {
		return err
	}
	for word, phonetic := range entries {
		p.trans.AddWordMapping(word, phonetic)
	}

	return nil
}

// Close releases the lexicon database
func (p *Processor) Close() error {
	if p.lexicon != nil {
		return p.lexicon.Close()
	}
	return nil
}

// Transliterate converts Yiddish text to phonetic Latin script, using the
// LLM backend when one is configured and the rule engine otherwise
func (p *Processor) Transliterate(text string) (string, error) {
	if p.llm != nil {
		phonetic, err := p.llm.Transliterate(context.Background(), text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM transliteration failed, using rule engine: %v\n", err)
			return p.trans.Transliterate(text), nil
		}
		return phonetic, nil
	}
	return p.trans.Transliterate(text), nil
}

// TranslitOnly prints the phonetic rendering of text without generating audio
func (p *Processor) TranslitOnly(text string) error {
	if err := audio.ValidateYiddishText(text); err != nil {
		return fmt.Errorf("invalid text: %w", err)
	}

	phonetic, err := p.Transliterate(text)
	if err != nil {
		return err
	}

	fmt.Println(phonetic)
	return nil
}

// Learn parses a 'word = phonetic' entry and stores it in the lexicon
func (p *Processor) Learn(entry string) error {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid lexicon entry %q, expected 'word = phonetic'", entry)
	}

	word := strings.TrimSpace(parts[0])
	phonetic := strings.TrimSpace(parts[1])
	if word == "" || phonetic == "" {
		return fmt.Errorf("invalid lexicon entry %q, expected 'word = phonetic'", entry)
	}

	if p.lexicon == nil {
		return fmt.Errorf("lexicon is not available")
	}
	if err := p.lexicon.Add(word, phonetic); err != nil {
		return err
	}
	p.trans.AddWordMapping(word, phonetic)

	fmt.Printf("Learned: %s = %s\n", word, phonetic)
	return nil
}

// ProcessBatch processes multiple words from a batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Validate Yiddish words before doing any work
	for _, entry := range entries {
		if err := audio.ValidateYiddishText(entry.Yiddish); err != nil {
			return fmt.Errorf("invalid word '%s': %w", entry.Yiddish, err)
		}
	}

	// Track statistics
	skippedCount := 0
	processedCount := 0
	errorCount := 0

	// Process each entry
	for i, entry := range entries {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Yiddish)

		// Check if word already exists and has all required files
		if p.isWordFullyProcessed(entry.Yiddish) {
			wordDir := p.findWordDirectory(entry.Yiddish)
			fmt.Printf("  ✓ Skipping '%s' - already fully processed in %s\n", entry.Yiddish, filepath.Base(wordDir))
			skippedCount++
			continue
		}

		if err := p.ProcessWordWithPhonetic(entry.Yiddish, entry.Phonetic); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Yiddish, err)
			errorCount++
			// Continue with next word
		} else {
			processedCount++
		}
	}

	// Print summary
	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total words: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	fmt.Printf("Skipped (already complete): %d\n", skippedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("================================\n")

	return nil
}

// ProcessSingleWord processes a single word or phrase from the command line
func (p *Processor) ProcessSingleWord(word string) error {
	// Validate word
	if err := audio.ValidateYiddishText(word); err != nil {
		return fmt.Errorf("invalid word '%s': %w", word, err)
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("\nProcessing: %s\n", word)
	return p.ProcessWordWithPhonetic(word, "")
}

// ProcessWordWithPhonetic processes a word with an optional pre-supplied
// phonetic rendering
func (p *Processor) ProcessWordWithPhonetic(word, providedPhonetic string) error {
	var phonetic string

	// Use provided rendering if available, otherwise transliterate
	if providedPhonetic != "" {
		phonetic = providedPhonetic
		fmt.Printf("  Using provided phonetic rendering: %s\n", phonetic)
	} else {
		fmt.Printf("  Transliterating...\n")
		var err error
		phonetic, err = p.Transliterate(word)
		if err != nil {
			return fmt.Errorf("transliteration failed: %w", err)
		}
		fmt.Printf("  Phonetic: %s\n", phonetic)
	}

	// Save the phonetic rendering next to the word metadata
	wordDir := p.findOrCreateWordDirectory(word)
	phoneticFile := filepath.Join(wordDir, "phonetic.txt")
	if _, err := os.Stat(phoneticFile); os.IsNotExist(err) {
		if err := os.WriteFile(phoneticFile, []byte(phonetic), 0644); err != nil {
			fmt.Printf("  Warning: Failed to save phonetic rendering: %v\n", err)
		}
	} else {
		fmt.Printf("  Phonetic file already exists\n")
	}

	// Generate audio
	if !p.flags.SkipAudio {
		fmt.Printf("  Generating audio...\n")
		if err := p.generateAudio(word, phonetic); err != nil {
			return fmt.Errorf("audio generation failed: %w", err)
		}
	}

	return nil
}

// generateAudio generates audio files for a phonetic rendering
func (p *Processor) generateAudio(word, phonetic string) error {
	// Get list of accents to use
	var accents []string
	if p.flags.AllAccents {
		accents = audio.AccentNames()
	} else {
		accents = []string{p.flags.Accent}
	}

	// Generate audio for each accent
	for i, accentName := range accents {
		if p.flags.AllAccents {
			fmt.Printf("  Generating audio %d/%d (accent: %s)...\n", i+1, len(accents), accentName)
		}
		if err := p.generateAudioWithAccent(word, phonetic, accentName); err != nil {
			return fmt.Errorf("failed to generate audio with accent %s: %w", accentName, err)
		}
	}

	return nil
}

// generateAudioWithAccent generates audio for a phonetic rendering with a
// specific accent preset
func (p *Processor) generateAudioWithAccent(word, phonetic, accentName string) error {
	accent, known := audio.LookupAccent(accentName)
	if !known {
		fmt.Printf("  Warning: unknown accent %q, using %s\n", accentName, audio.DefaultAccent)
	}

	// Create audio provider configuration
	providerConfig := &audio.Config{
		Provider:     p.flags.AudioAPI,
		OutputDir:    p.flags.OutputDir,
		OutputFormat: p.flags.AudioFormat,

		// espeak-ng settings follow the accent preset; explicit flags win
		ESpeakVoice:     accent.Voice,
		ESpeakSpeed:     accent.Speed,
		ESpeakPitch:     accent.Pitch,
		ESpeakAmplitude: p.flags.ESpeakAmplitude,
		ESpeakWordGap:   p.flags.ESpeakWordGap,

		// OpenAI settings
		OpenAIKey:         cli.GetOpenAIKey(),
		OpenAIModel:       p.flags.OpenAIModel,
		OpenAIVoice:       p.flags.OpenAIVoice,
		OpenAISpeed:       p.flags.OpenAISpeed,
		OpenAIInstruction: p.flags.OpenAIInstruction,

		// Caching
		EnableCache: viper.GetBool("audio.enable_cache"),
		CacheDir:    viper.GetString("audio.cache_dir"),
	}

	// Explicit speed/pitch flags override the accent preset
	if viper.IsSet("audio.speed") {
		providerConfig.ESpeakSpeed = viper.GetInt("audio.speed")
	}
	if viper.IsSet("audio.pitch") {
		providerConfig.ESpeakPitch = viper.GetInt("audio.pitch")
	}

	// Set defaults
	if providerConfig.CacheDir == "" {
		providerConfig.CacheDir = "./.audio_cache"
	}

	// Use config file values if not overridden by flags
	if p.flags.OpenAIModel == "gpt-4o-mini-tts" && viper.IsSet("audio.openai_model") {
		providerConfig.OpenAIModel = viper.GetString("audio.openai_model")
	}
	if p.flags.OpenAIInstruction == "" && viper.IsSet("audio.openai_instruction") {
		providerConfig.OpenAIInstruction = viper.GetString("audio.openai_instruction")
	}

	// Create the audio provider
	provider, err := audio.NewProvider(providerConfig)
	if err != nil {
		return err
	}

	// Find existing word directory or create new one
	wordDir := p.findOrCreateWordDirectory(word)

	// Add accent name to filename if generating multiple accents
	var outputFile string
	if p.flags.AllAccents {
		outputFile = filepath.Join(wordDir, fmt.Sprintf("audio_%s.%s", accentName, p.flags.AudioFormat))
	} else {
		outputFile = filepath.Join(wordDir, fmt.Sprintf("audio.%s", p.flags.AudioFormat))
	}

	// Generate the audio from the phonetic rendering
	ctx := context.Background()
	if err := provider.GenerateAudio(ctx, phonetic, outputFile); err != nil {
		return err
	}

	// Save audio metadata
	if err := p.saveAudioMetadata(wordDir, phonetic, accentName, providerConfig); err != nil {
		fmt.Printf("  Warning: Failed to save audio metadata: %v\n", err)
	}

	return nil
}

// saveAudioMetadata records how the audio was synthesized
func (p *Processor) saveAudioMetadata(wordDir, phonetic, accentName string, config *audio.Config) error {
	var metadata string
	if config.Provider == "openai" {
		metadata = fmt.Sprintf("provider=openai\nmodel=%s\nvoice=%s\nspeed=%.2f\nphonetic=%s\n",
			config.OpenAIModel, config.OpenAIVoice, config.OpenAISpeed, phonetic)
	} else {
		metadata = fmt.Sprintf("provider=espeak\naccent=%s\nvoice=%s\nspeed=%d\npitch=%d\nphonetic=%s\n",
			accentName, config.ESpeakVoice, config.ESpeakSpeed, config.ESpeakPitch, phonetic)
	}

	metadataFile := filepath.Join(wordDir, "audio_metadata.txt")
	if err := os.WriteFile(metadataFile, []byte(metadata), 0644); err != nil {
		return fmt.Errorf("failed to write audio metadata file: %w", err)
	}
	return nil
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode() error {
	// Create GUI configuration from command line flags and viper config
	guiConfig := &gui.Config{
		AudioFormat: p.flags.AudioFormat,
		AudioAPI:    p.flags.AudioAPI,
		Accent:      p.flags.Accent,
		OpenAIKey:   cli.GetOpenAIKey(),
	}

	// Only set OutputDir if it was explicitly provided via flag
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "yidspeak", "words")
	if p.flags.OutputDir != defaultOutputDir {
		// User explicitly set a different output directory
		guiConfig.OutputDir = p.flags.OutputDir
	}
	// Otherwise, gui.New will use its own default (XDG state directory)

	// Create and run GUI application
	app := gui.New(guiConfig, p.trans)
	app.Run()

	return nil
}

// Helper methods

func (p *Processor) findOrCreateWordDirectory(word string) string {
	// Try to find existing directory first
	if dir := p.findWordDirectory(word); dir != "" {
		return dir
	}

	// No existing directory, create new one with word ID
	wordID := internal.GenerateWordID(word)
	wordDir := filepath.Join(p.flags.OutputDir, wordID)
	if err := os.MkdirAll(wordDir, 0755); err != nil {
		fmt.Printf("Warning: failed to create word directory: %v\n", err)
		return p.flags.OutputDir // Fallback to output directory
	}

	// Save word metadata
	metadataFile := filepath.Join(wordDir, "word.txt")
	if err := os.WriteFile(metadataFile, []byte(word), 0644); err != nil {
		fmt.Printf("Warning: failed to save word metadata: %v\n", err)
	}

	return wordDir
}

func (p *Processor) findWordDirectory(word string) string {
	entries, err := os.ReadDir(p.flags.OutputDir)
	if err != nil {
		return ""
	}

	// Look through all directories to find one with matching word.txt
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dirPath := filepath.Join(p.flags.OutputDir, entry.Name())
		wordFile := filepath.Join(dirPath, "word.txt")

		// Read the word file to check if it matches
		if data, err := os.ReadFile(wordFile); err == nil {
			storedWord := strings.TrimSpace(string(data))
			if storedWord == word {
				return dirPath
			}
		}
	}

	return ""
}

// isWordFullyProcessed checks if a word has already been fully processed
func (p *Processor) isWordFullyProcessed(word string) bool {
	// Find the word directory
	wordDir := p.findWordDirectory(word)
	if wordDir == "" {
		return false // No directory exists
	}

	// Check for required files
	requiredFiles := []string{
		"word.txt",     // Word metadata
		"phonetic.txt", // Phonetic rendering
	}

	// Check for audio-related files (unless skipped)
	if !p.flags.SkipAudio {
		requiredFiles = append(requiredFiles, "audio_metadata.txt")

		// Check for audio file (without accent suffix for single accent mode)
		audioFile := filepath.Join(wordDir, fmt.Sprintf("audio.%s", p.flags.AudioFormat))
		if _, err := os.Stat(audioFile); os.IsNotExist(err) {
			// Also check for audio files with accent suffix (for all-accents mode)
			audioPattern := fmt.Sprintf("audio_*.%s", p.flags.AudioFormat)
			matches, _ := filepath.Glob(filepath.Join(wordDir, audioPattern))
			if len(matches) == 0 {
				return false // No audio file found
			}
		}
	}

	// Check all required files exist
	for _, file := range requiredFiles {
		filePath := filepath.Join(wordDir, file)
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			return false // Required file missing
		}
	}

	return true // All required files exist
}
