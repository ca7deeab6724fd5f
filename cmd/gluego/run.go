package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/josenarvaezp/gluego/examples/helloworld"
	"github.com/josenarvaezp/gluego/pkg/glue"
)

const appName = "gluego"

var runCmd = &cobra.Command{
	Use:   "run -- --JOB_NAME <name> [job arguments]",
	Short: "Run the hello world job locally",
	Long:  `Run the hello world job locally. Job arguments follow --, in the --NAME value form`,
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sc := glue.NewComputeContext(appName)
		defer sc.Stop()

		runLogger := logrus.WithFields(logrus.Fields{
			"App ID": sc.AppID,
		})

		gc, err := glue.NewGlueContext(ctx, sc, conf)
		if err != nil {
			runLogger.WithError(err).Error("Error creating glue context")
			return err
		}
		defer gc.Close()

		if err := helloworld.Run(ctx, gc, args, os.Stdout); err != nil {
			runLogger.WithError(err).Error("Error running job")
			return err
		}

		return nil
	},
}
