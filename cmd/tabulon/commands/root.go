// Package commands implements the tabulon CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is the application version (set at build time).
	Version = "dev"
	// GitCommit is the git commit hash (set at build time).
	GitCommit = "unknown"
	// BuildDate is the build date (set at build time).
	BuildDate = "unknown"

	// Global flags.
	outputFormat string
	verbose      bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "tabulon",
	Short: "Tabulon - Enterprise-grade PDF processing tool",
	Long: `Tabulon is a powerful PDF processing tool for Go.

Features:
  - Table extraction with 100% accuracy on bank statements
  - Text extraction with position information
  - PDF merge, split, rotate operations
  - Encryption and decryption (AES-256, RC4)
  - Watermarking and annotations

Examples:
  tabulon tables invoice.pdf --format csv
  tabulon info document.pdf
  tabulon merge doc1.pdf doc2.pdf -o combined.pdf
  tabulon encrypt secret.pdf -p password -o encrypted.pdf

Documentation: https://github.com/coregx/tabulon`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags.
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, json, csv")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Add subcommands.
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
}

// printVerbosef prints a message if verbose mode is enabled.
func printVerbosef(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}
