// cmd/footprint/main.go
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "footprint",
		Short:        "Household carbon footprint calculator",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(emailPreviewCmd())
	rootCmd.AddCommand(registryCmd())
	return rootCmd
}

func calculateCmd() *cobra.Command {
	var (
		userID   string
		external bool
		compact  bool
	)

	cmd := &cobra.Command{
		Use:   "calculate [request.json]",
		Short: "Run the footprint pipeline once and print the result envelope",
		Long: `Reads a request of the form {"userId": "...", "userInput": {...}} and prints
the result envelope as JSON. Use "-" to read from stdin.

The deterministic analysis is used unless --external is set and an
API key is configured.`,
		Example: `  footprint calculate request.json
  footprint calculate --user-id alice --external request.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, args[0], calculateOptions{
				UserID:   userID,
				External: external,
				Compact:  compact,
			})
		},
	}

	cmd.Flags().StringVarP(&userID, "user-id", "u", "", "override the userId in the request")
	cmd.Flags().BoolVar(&external, "external", false, "call the configured text generation service")
	cmd.Flags().BoolVar(&compact, "compact", false, "print single-line JSON")
	return cmd
}

func emailPreviewCmd() *cobra.Command {
	var (
		to   string
		html bool
	)

	cmd := &cobra.Command{
		Use:   "email-preview [results.json]",
		Short: "Render the results email for a result envelope or results summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmailPreview(cmd, args[0], to, html)
		},
	}

	cmd.Flags().StringVar(&to, "to", "someone@example.com", "recipient address shown in the preview")
	cmd.Flags().BoolVar(&html, "html", false, "print the HTML body instead of the text body")
	return cmd
}
