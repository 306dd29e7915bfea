package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"blindsteg/internal/logging"
)

type rootOpts struct {
	cpuProfile    string
	memProfileDir string
	verbose       bool
}

func RootCommand() *cobra.Command {
	opts := rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "blindsteg",
		Short:         "Blind LSB steganography for images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logging.SetLevel(slog.LevelDebug)
			}
			if opts.cpuProfile != "" {
				if err := StartCPUProfiler(opts.cpuProfile); err != nil {
					return err
				}
			}
			if opts.memProfileDir != "" {
				StartMemoryProfiler(opts.memProfileDir)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return StopProfilers()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug information, including timings")

	rootCmd.AddCommand(ImageCommands(), ServeAppCommand())
	return rootCmd
}
