// Package cmd implements the CLI commands for linkxtract.
package cmd

import "github.com/spf13/cobra"

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "linkxtract",
	Short:         "linkxtract — extract and filter hyperlinks from an HTML or XHTML page",
	SilenceErrors: true,
	SilenceUsage:  true,
	Long: `linkxtract fetches a single page and extracts the hyperlinks it
contains, applying the same allow/deny/domain/extension/text filters a
crawler's link extractor would, then prints the surviving links.

Homepage: https://github.com/tariktz/linkxtract`,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of linkxtract",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("linkxtract", Version)
		},
	})
}

// Execute runs the root command. It is the single entry point called by main.
func Execute() error {
	return rootCmd.Execute()
}
