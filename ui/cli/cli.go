// Package cli is the command line interface of the slideshow.
package cli

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vincit.fi/eink-slideshow/backend"
	"vincit.fi/eink-slideshow/common/config"
	"vincit.fi/eink-slideshow/common/logger"
)

const eventBusQueueSize = 100

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "eink-slideshow",
		Short:         "Slideshow for e-ink photo displays",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigFile, "Configuration file")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")

	rootCmd.AddCommand(newRunCommand(), newShowCommand(), newListCommand())
	return rootCmd
}

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the images of a directory in a loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deviceConfig, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return backend.RunSlideshow(ctx, deviceConfig, eventBusQueueSize)
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Image directory")
	cmd.Flags().DurationP("interval", "i", 0, "Time between images, e.g. 5m")
	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <image>",
		Short: "Render a single image once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deviceConfig, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return backend.ShowImage(deviceConfig, args[0])
		},
	}
}

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the images in slideshow order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deviceConfig, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			paths, err := backend.ListImages(deviceConfig.Values().ImageDir)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), paths)
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Image directory")
	return cmd
}

// loadConfig reads the configuration file and applies the flags of cmd on
// top of it. Loggers are initialized from the resulting log level.
func loadConfig(cmd *cobra.Command) (*config.DeviceConfig, error) {
	params := paramsFromFlags(cmd)

	deviceConfig, err := config.Load(params.ConfigFile())
	if err != nil {
		return nil, err
	}
	deviceConfig.ApplyParams(params)
	logger.Initialize(logger.StringToLogLevel(deviceConfig.Values().LogLevel))
	return deviceConfig, nil
}

func paramsFromFlags(cmd *cobra.Command) *config.Params {
	configFile, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	var imageDir string
	if cmd.Flags().Lookup("dir") != nil {
		imageDir, _ = cmd.Flags().GetString("dir")
	}
	var interval time.Duration
	if cmd.Flags().Lookup("interval") != nil {
		interval, _ = cmd.Flags().GetDuration("interval")
	}
	return config.NewParams(configFile, imageDir, interval, logLevel)
}

func printLines(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}
