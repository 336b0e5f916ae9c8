package gui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/yidspeak/internal"
	"codeberg.org/snonux/yidspeak/internal/audio"
	"codeberg.org/snonux/yidspeak/internal/translit"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	textInput       *widget.Entry
	phoneticDisplay *widget.Entry
	accentSelect    *widget.Select
	speakButton     *ttwidget.Button
	saveButton      *ttwidget.Button
	audioPlayer     *AudioPlayer
	statusLabel     *widget.Label

	// State management
	currentAudioFile string

	// Configuration
	config *Config
	trans  *translit.Transliterator

	// Background processing
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// Config holds GUI application configuration
type Config struct {
	OutputDir   string
	AudioFormat string
	AudioAPI    string
	Accent      string
	OpenAIKey   string
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	// Use XDG Base Directory specification for state data
	outputDir := filepath.Join(homeDir, ".local", "state", "yidspeak", "words")

	return &Config{
		OutputDir:   outputDir,
		AudioFormat: "wav",
		AudioAPI:    "espeak",
		Accent:      audio.DefaultAccent,
	}
}

// New creates a new GUI application
func New(config *Config, trans *translit.Transliterator) *Application {
	if config == nil {
		config = DefaultConfig()
	} else {
		// Fill in missing fields with defaults
		defaults := DefaultConfig()
		if config.OutputDir == "" {
			config.OutputDir = defaults.OutputDir
		}
		if config.AudioFormat == "" {
			config.AudioFormat = defaults.AudioFormat
		}
		if config.AudioAPI == "" {
			config.AudioAPI = defaults.AudioAPI
		}
		if config.Accent == "" {
			config.Accent = defaults.Accent
		}
	}
	if trans == nil {
		trans = translit.New()
	}

	// Ensure output directory exists
	os.MkdirAll(config.OutputDir, 0755)

	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("org.codeberg.snonux.yidspeak")

	a := &Application{
		app:    myApp,
		config: config,
		trans:  trans,
		ctx:    ctx,
		cancel: cancel,
	}

	a.setupUI()

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("yidspeak v%s - Yiddish Text-to-Speech", internal.Version))
	a.window.Resize(fyne.NewSize(700, 500))

	// Yiddish input with live phonetic preview
	a.textInput = widget.NewMultiLineEntry()
	a.textInput.SetPlaceHolder("Yiddish text in Hebrew script...")
	a.textInput.Wrapping = fyne.TextWrapWord
	a.textInput.OnChanged = func(text string) {
		a.phoneticDisplay.SetText(a.trans.Transliterate(text))
	}

	a.phoneticDisplay = widget.NewMultiLineEntry()
	a.phoneticDisplay.SetPlaceHolder("Phonetic rendering appears here...")
	a.phoneticDisplay.Wrapping = fyne.TextWrapWord

	// Accent selection
	a.accentSelect = widget.NewSelect(audio.AccentNames(), func(name string) {
		a.mu.Lock()
		a.config.Accent = name
		a.mu.Unlock()
	})
	a.accentSelect.SetSelected(a.config.Accent)

	// Action buttons
	a.speakButton = ttwidget.NewButton("Speak", a.onSpeak)
	a.speakButton.Icon = theme.MediaPlayIcon()

	a.saveButton = ttwidget.NewButton("Save", a.onSave)
	a.saveButton.Icon = theme.DocumentSaveIcon()

	a.audioPlayer = NewAudioPlayer()
	a.statusLabel = widget.NewLabel("Ready")

	inputSection := container.NewVBox(
		widget.NewLabelWithStyle("Yiddish", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.textInput,
		widget.NewLabelWithStyle("Phonetic", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.phoneticDisplay,
	)

	controlSection := container.NewHBox(
		widget.NewLabel("Accent:"),
		a.accentSelect,
		layout.NewSpacer(),
		a.speakButton,
		a.saveButton,
	)

	statusSection := container.NewVBox(
		a.audioPlayer,
		a.statusLabel,
	)

	content := container.NewBorder(
		nil,
		statusSection,
		nil, nil,
		container.NewVBox(inputSection, controlSection),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	a.speakButton.SetToolTip("Synthesize and play the phonetic text")
	a.saveButton.SetToolTip("Save audio and phonetic rendering to the output directory")

	a.window.SetCloseIntercept(func() {
		a.cancel()
		a.wg.Wait()
		a.window.Close()
	})
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// onSpeak synthesizes the current phonetic text and plays it
func (a *Application) onSpeak() {
	phonetic := strings.TrimSpace(a.phoneticDisplay.Text)
	if phonetic == "" {
		a.statusLabel.SetText("Nothing to speak")
		return
	}

	a.speakButton.Disable()
	a.statusLabel.SetText("Synthesizing...")

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		outputFile := filepath.Join(a.config.OutputDir,
			fmt.Sprintf("preview.%s", a.config.AudioFormat))
		err := a.synthesize(phonetic, outputFile)

		fyne.Do(func() {
			a.speakButton.Enable()
			if err != nil {
				a.statusLabel.SetText(fmt.Sprintf("Error: %v", err))
				return
			}
			a.currentAudioFile = outputFile
			a.statusLabel.SetText("Done")
			a.audioPlayer.SetAudioFile(outputFile)
			a.audioPlayer.Play()
		})
	}()
}

// onSave stores the current text, rendering and audio in a word directory
func (a *Application) onSave() {
	text := strings.TrimSpace(a.textInput.Text)
	phonetic := strings.TrimSpace(a.phoneticDisplay.Text)
	if text == "" || phonetic == "" {
		a.statusLabel.SetText("Nothing to save")
		return
	}

	a.saveButton.Disable()
	a.statusLabel.SetText("Saving...")

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		wordDir := filepath.Join(a.config.OutputDir, internal.GenerateWordID(text))
		err := os.MkdirAll(wordDir, 0755)
		if err == nil {
			err = os.WriteFile(filepath.Join(wordDir, "word.txt"), []byte(text), 0644)
		}
		if err == nil {
			err = os.WriteFile(filepath.Join(wordDir, "phonetic.txt"), []byte(phonetic), 0644)
		}
		if err == nil {
			audioFile := filepath.Join(wordDir, fmt.Sprintf("audio.%s", a.config.AudioFormat))
			err = a.synthesize(phonetic, audioFile)
		}

		fyne.Do(func() {
			a.saveButton.Enable()
			if err != nil {
				a.statusLabel.SetText(fmt.Sprintf("Error: %v", err))
				return
			}
			a.statusLabel.SetText(fmt.Sprintf("Saved to %s", filepath.Base(wordDir)))
		})
	}()
}

// synthesize renders phonetic text to an audio file with the current accent
func (a *Application) synthesize(phonetic, outputFile string) error {
	a.mu.Lock()
	accentName := a.config.Accent
	a.mu.Unlock()

	accent, _ := audio.LookupAccent(accentName)

	provider, err := audio.NewProvider(&audio.Config{
		Provider:        a.config.AudioAPI,
		OutputDir:       a.config.OutputDir,
		OutputFormat:    a.config.AudioFormat,
		ESpeakVoice:     accent.Voice,
		ESpeakSpeed:     accent.Speed,
		ESpeakPitch:     accent.Pitch,
		ESpeakAmplitude: 100,
		OpenAIKey:       a.config.OpenAIKey,
		OpenAIModel:     "gpt-4o-mini-tts",
		OpenAIVoice:     "onyx",
		OpenAISpeed:     0.9,
		EnableCache:     true,
		CacheDir:        "./.audio_cache",
	})
	if err != nil {
		return err
	}

	return provider.GenerateAudio(a.ctx, phonetic, outputFile)
}
