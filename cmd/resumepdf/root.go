package main

import (
	"github.com/spf13/cobra"

	"resume-portal/internal/shared/telemetry"
)

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "resumepdf",
		Short:         "Render student resumes to PDF",
		Long:          "resumepdf draws a resume with one of the built-in templates and writes the PDF to disk.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			telemetry.SetOutput(cmd.ErrOrStderr())
			telemetry.SetLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newTemplatesCmd(), newRenderCmd(), newRenderAllCmd())
	return root
}
