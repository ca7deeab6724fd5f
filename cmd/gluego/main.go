package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/josenarvaezp/gluego/internal/config"
	"github.com/josenarvaezp/gluego/internal/logs"
)

// CLI for gluego
var (
	// Used for CLI flags
	configPath string
	jobName    string
	jobArgs    []string
)

var conf *config.Config

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigFile, "path to the config file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(invokeCmd)
	rootCmd.AddCommand(bookmarkCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gluego",
	Short: "gluego runs and manages Glue ETL jobs",
	Long:  `gluego runs Glue ETL jobs locally or on lambda, and deploys, starts and inspects them on AWS Glue`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		conf, err = config.Load(configPath)
		if err != nil {
			logrus.WithField("File name", configPath).WithError(err).Error("Error reading config file")
			return err
		}

		// set logger
		logrus.SetLevel(logs.ConfigLogLevelToLevel(conf.LogLevel))
		return nil
	},
	SilenceUsage: true,
}
