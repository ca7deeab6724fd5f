package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/josenarvaezp/gluego/internal/driver"
	"github.com/josenarvaezp/gluego/pkg/glue"
)

var (
	remote bool
	runID  string
)

func init() {
	bookmarkCmd.PersistentFlags().StringVar(&jobName, "job", "", "name of the job")
	bookmarkCmd.PersistentFlags().BoolVar(&remote, "remote", false, "use the bookmark kept by AWS Glue")
	bookmarkCmd.MarkPersistentFlagRequired("job")

	bookmarkResetCmd.Flags().StringVar(&runID, "run-id", "", "reset to the state before this run (remote only)")

	bookmarkCmd.AddCommand(bookmarkShowCmd)
	bookmarkCmd.AddCommand(bookmarkResetCmd)
}

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Inspect or reset job bookmarks",
	Long:  `Inspect or reset the bookmark of a job, either the local one written on commit or the one kept by AWS Glue`,
}

var bookmarkShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the bookmark of a job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		bookmarkLogger := logrus.WithField("Job name", jobName)

		var entry interface{}
		if remote {
			jobDriver, err := driver.NewDriver(ctx, conf)
			if err != nil {
				bookmarkLogger.WithError(err).Error("Error initializing driver")
				return err
			}
			res, err := jobDriver.GetBookmark(ctx, jobName)
			if err != nil {
				bookmarkLogger.WithError(err).Error("Error getting bookmark")
				return err
			}
			if res != nil {
				entry = res
			}
		} else {
			gc, err := glue.NewGlueContext(ctx, glue.NewComputeContext(appName), conf)
			if err != nil {
				bookmarkLogger.WithError(err).Error("Error creating glue context")
				return err
			}
			defer gc.Close()
			res, err := gc.Bookmarks.Load(ctx, jobName)
			if err != nil {
				bookmarkLogger.WithError(err).Error("Error loading bookmark")
				return err
			}
			if res != nil {
				entry = res
			}
		}

		if entry == nil {
			fmt.Println("No bookmark for", jobName)
			return nil
		}

		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var bookmarkResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the bookmark of a job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		bookmarkLogger := logrus.WithField("Job name", jobName)

		if remote {
			jobDriver, err := driver.NewDriver(ctx, conf)
			if err != nil {
				bookmarkLogger.WithError(err).Error("Error initializing driver")
				return err
			}
			if err := jobDriver.ResetBookmark(ctx, jobName, runID); err != nil {
				bookmarkLogger.WithError(err).Error("Error resetting bookmark")
				return err
			}
		} else {
			if runID != "" {
				return errors.New("--run-id needs --remote")
			}
			gc, err := glue.NewGlueContext(ctx, glue.NewComputeContext(appName), conf)
			if err != nil {
				bookmarkLogger.WithError(err).Error("Error creating glue context")
				return err
			}
			defer gc.Close()
			if err := gc.Bookmarks.Reset(ctx, jobName); err != nil {
				bookmarkLogger.WithError(err).Error("Error resetting bookmark")
				return err
			}
		}

		fmt.Println("Bookmark of", jobName, "reset")
		return nil
	},
}
