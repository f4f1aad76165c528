package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tobbylie/blog/internal/markdown"
)

var renderCmd = &cobra.Command{
	Use:   "render <file|->",
	Short: "Render markdown to sanitized HTML",
	Long: `render converts a markdown file (or stdin with "-") to HTML through the
same parser and sanitizer the server uses, and prints the result.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			source []byte
			err    error
		)
		if args[0] == "-" {
			source, err = io.ReadAll(cmd.InOrStdin())
		} else {
			source, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to read markdown: %w", err)
		}

		parser := markdown.NewParser(markdown.WithCodeStyle(appCfg.CodeStyle))
		pipeline := markdown.NewPipeline(parser, markdown.NewSanitizer())

		_, err = io.WriteString(cmd.OutOrStdout(), pipeline.RenderSafe(string(source)).String())
		return err
	},
}
