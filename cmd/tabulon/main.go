// Package main provides the tabulon command-line interface.
//
// tabulon is a powerful PDF processing tool that provides table extraction,
// text extraction, PDF manipulation, and more.
//
// Usage:
//
//	tabulon [command] [flags]
//
// Available Commands:
//
//	tables      Extract tables from PDF (100% accuracy on bank statements)
//	text        Extract text from PDF
//	info        Display PDF metadata and information
//	merge       Merge multiple PDF files
//	split       Extract selected pages into a new PDF
//	encrypt     Encrypt PDF with password
//	decrypt     Decrypt password-protected PDF
//	version     Print version information
//
// Use "tabulon [command] --help" for more information about a command.
package main

import (
	"os"

	"github.com/coregx/tabulon/cmd/tabulon/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
