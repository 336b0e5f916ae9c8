package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/yidspeak/internal"
	"codeberg.org/snonux/yidspeak/internal/translit"
)

// Flags
var finalKhofK bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yid [text]",
	Short: "Yiddish transliteration filter",
	Long: `yid converts Yiddish text in Hebrew script to phonetic Latin script.

It reads text from arguments or from standard input, making it usable
as a pipe filter.

Example:
  yid "שלום עליכם"          # Prints: sholem aleykhem
  cat poem.txt | yid        # Transliterate a whole file`,
	Args:    cobra.ArbitraryArgs,
	RunE:    runCommand,
	Version: internal.Version,
}

func init() {
	rootCmd.Flags().BoolVar(&finalKhofK, "final-khof-k", false, "Render final khof (ך) as 'k' instead of 'kh'")
}

func runCommand(cmd *cobra.Command, args []string) error {
	var opts []translit.Option
	if finalKhofK {
		opts = append(opts, translit.WithCharMapping('ך', "k"))
	}
	trans := translit.New(opts...)

	// Arguments given: transliterate them and exit
	if len(args) > 0 {
		fmt.Println(trans.Transliterate(strings.Join(args, " ")))
		return nil
	}

	// No arguments: act as a line filter on stdin
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(trans.Transliterate(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
