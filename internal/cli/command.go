package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/yidspeak/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yidspeak [text]",
		Short: "Yiddish Text-to-Speech Generator",
		Long: `yidspeak converts Yiddish text in Hebrew script into phonetic Latin
script and synthesizes speech from it.

It uses a rule-based transliteration engine with a user-extensible
pronunciation lexicon, and renders audio with espeak-ng or OpenAI TTS
using European accent presets.

Examples:
  yidspeak                          # Launch interactive GUI (default)
  yidspeak "שלום עליכם"             # Generate audio for a phrase via CLI
  yidspeak --translit-only "שלום"   # Print the phonetic rendering only
  yidspeak --batch words.txt        # Process multiple words from file
  yidspeak --accent polish "שלום"   # Use the Polish accent preset`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Set default output directory to match GUI mode
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "yidspeak", "words")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.yidspeak.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory")
	cmd.Flags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (wav or mp3)")
	cmd.Flags().StringVar(&flags.AudioAPI, "audio-api", flags.AudioAPI, "Audio backend (espeak or openai)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one per line, optional 'word = phonetic')")
	cmd.Flags().StringVar(&flags.Accent, "accent", flags.Accent, "Accent preset: german, polish, russian, hungarian, dutch, english")
	cmd.Flags().BoolVar(&flags.AllAccents, "all-accents", false, "Generate audio in all accent presets (creates multiple files)")
	cmd.Flags().BoolVar(&flags.SkipAudio, "skip-audio", false, "Skip audio generation")
	cmd.Flags().BoolVar(&flags.TranslitOnly, "translit-only", false, "Print the phonetic rendering and exit, no audio")
	cmd.Flags().StringVar(&flags.LearnEntry, "learn", "", "Store a pronunciation in the lexicon ('word = phonetic')")
	cmd.Flags().BoolVar(&flags.FinalKhofK, "final-khof-k", false, "Render final khof (ך) as 'k' instead of 'kh'")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.ListAccents, "list-accents", false, "List available accent presets")
	cmd.Flags().BoolVar(&flags.ArchiveMode, "archive", false, "Archive the output directory and exit")
	cmd.Flags().BoolVar(&flags.GUIMode, "gui", false, "Launch the GUI (default when no text is given)")

	// LLM flags
	cmd.Flags().BoolVar(&flags.UseLLM, "use-llm", false, "Use an LLM for transliteration instead of the rule engine")
	cmd.Flags().StringVar(&flags.LLMProvider, "llm-provider", flags.LLMProvider, "LLM backend: openai or gemini")
	cmd.Flags().StringVar(&flags.LLMModel, "llm-model", "", "LLM model override (default depends on backend)")

	// eSpeak flags
	cmd.Flags().IntVar(&flags.ESpeakSpeed, "speed", flags.ESpeakSpeed, "eSpeak speech rate in words per minute (80 to 450)")
	cmd.Flags().IntVar(&flags.ESpeakPitch, "pitch", flags.ESpeakPitch, "eSpeak pitch adjustment (0 to 99)")
	cmd.Flags().IntVar(&flags.ESpeakAmplitude, "amplitude", flags.ESpeakAmplitude, "eSpeak amplitude (0 to 200)")
	cmd.Flags().IntVar(&flags.ESpeakWordGap, "word-gap", flags.ESpeakWordGap, "eSpeak pause between words in 10ms units")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0, may be ignored by gpt-4o-mini-tts)")
	cmd.Flags().StringVar(&flags.OpenAIInstruction, "openai-instruction", "", "Voice instructions for gpt-4o-mini-tts model (e.g., 'speak slowly with a Yiddish accent')")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("audio-api"))
	viper.BindPFlag("audio.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("audio.accent", cmd.Flags().Lookup("accent"))
	viper.BindPFlag("audio.speed", cmd.Flags().Lookup("speed"))
	viper.BindPFlag("audio.pitch", cmd.Flags().Lookup("pitch"))
	viper.BindPFlag("audio.amplitude", cmd.Flags().Lookup("amplitude"))
	viper.BindPFlag("audio.word_gap", cmd.Flags().Lookup("word-gap"))
	viper.BindPFlag("audio.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("audio.openai_instruction", cmd.Flags().Lookup("openai-instruction"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("llm.provider", cmd.Flags().Lookup("llm-provider"))
	viper.BindPFlag("llm.model", cmd.Flags().Lookup("llm-model"))
	viper.BindPFlag("translit.final_khof_k", cmd.Flags().Lookup("final-khof-k"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".yidspeak" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".yidspeak")
	}

	// Environment variables
	viper.SetEnvPrefix("YIDSPEAK")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("audio.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("llm.gemini_key")
}
