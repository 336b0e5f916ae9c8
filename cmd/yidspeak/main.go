package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/yidspeak/internal/archive"
	"codeberg.org/snonux/yidspeak/internal/audio"
	"codeberg.org/snonux/yidspeak/internal/cli"
	"codeberg.org/snonux/yidspeak/internal/models"
	"codeberg.org/snonux/yidspeak/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.ArchiveMode {
		home, _ := os.UserHomeDir()
		wordsDir := filepath.Join(home, ".local", "state", "yidspeak", "words")
		if err := archive.ArchiveWords(wordsDir); err != nil {
			return fmt.Errorf("failed to archive words: %w", err)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	// Handle --list-accents flag
	if flags.ListAccents {
		fmt.Println("Available accent presets:")
		for _, name := range audio.AccentNames() {
			accent, _ := audio.LookupAccent(name)
			marker := " "
			if name == audio.DefaultAccent {
				marker = "*"
			}
			fmt.Printf("  %s %-10s %s\n", marker, name, accent.Description)
		}
		return nil
	}

	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	// Handle --learn flag
	if flags.LearnEntry != "" {
		return proc.Learn(flags.LearnEntry)
	}

	// Handle --translit-only flag
	if flags.TranslitOnly {
		if len(args) == 0 {
			return fmt.Errorf("--translit-only requires text to transliterate")
		}
		return proc.TranslitOnly(args[0])
	}

	// Handle batch processing
	if flags.BatchFile != "" {
		// Process batch file
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	} else if len(args) > 0 && !flags.GUIMode {
		// Process single word or phrase
		if err := proc.ProcessSingleWord(args[0]); err != nil {
			return err
		}
	} else {
		// No input provided - launch GUI mode by default
		return proc.RunGUIMode()
	}

	fmt.Printf("\nDone! Materials saved to: %s\n", flags.OutputDir)
	return nil
}
