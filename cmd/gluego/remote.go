package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/josenarvaezp/gluego/internal/driver"
	"github.com/josenarvaezp/gluego/pkg/args"
)

var (
	scriptPath      string
	roleName        string
	glueVersion     string
	workerType      string
	numberOfWorkers int32
	functionName    string
	wait            bool
	pollInterval    time.Duration
)

func init() {
	deployCmd.Flags().StringVar(&jobName, "job", "", "name of the job")
	deployCmd.Flags().StringVar(&scriptPath, "script", "", "path to the job script, or its s3:// location")
	deployCmd.Flags().StringVar(&roleName, "role", "", "name or ARN of the role the job runs with")
	deployCmd.Flags().StringVar(&glueVersion, "glue-version", "", "glue version of the job")
	deployCmd.Flags().StringVar(&workerType, "worker-type", "", "worker type of the job")
	deployCmd.Flags().Int32Var(&numberOfWorkers, "workers", 0, "number of workers of the job")
	deployCmd.Flags().StringArrayVar(&jobArgs, "arg", nil, "default job argument as NAME=value")
	deployCmd.MarkFlagRequired("job")
	deployCmd.MarkFlagRequired("script")
	deployCmd.MarkFlagRequired("role")

	startCmd.Flags().StringVar(&jobName, "job", "", "name of the job")
	startCmd.Flags().StringArrayVar(&jobArgs, "arg", nil, "job argument as NAME=value")
	startCmd.Flags().BoolVar(&wait, "wait", false, "wait until the run finishes")
	startCmd.Flags().DurationVar(&pollInterval, "poll", driver.DefaultPollInterval, "how often to check the run while waiting")
	startCmd.MarkFlagRequired("job")

	invokeCmd.Flags().StringVar(&functionName, "function", "", "name or ARN of the job lambda")
	invokeCmd.Flags().StringArrayVar(&jobArgs, "arg", nil, "job argument as NAME=value")
	invokeCmd.MarkFlagRequired("function")
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Upload a job script and create or update the Glue job",
	Long:  `Upload a job script to the assets bucket and create or update the Glue job that runs it`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		deployLogger := logrus.WithField("Job name", jobName)

		defaultArguments, err := args.ParsePairs(jobArgs)
		if err != nil {
			return err
		}

		jobDriver, err := driver.NewDriver(ctx, conf)
		if err != nil {
			deployLogger.WithError(err).Error("Error initializing driver")
			return err
		}

		location, err := jobDriver.Deploy(ctx, driver.DeployInput{
			JobName:          jobName,
			ScriptPath:       scriptPath,
			Role:             roleName,
			GlueVersion:      glueVersion,
			WorkerType:       workerType,
			NumberOfWorkers:  numberOfWorkers,
			DefaultArguments: args.ServiceArguments(defaultArguments),
		})
		if err != nil {
			deployLogger.WithError(err).Error("Error deploying job")
			return err
		}

		fmt.Println("Deployed", jobName, "with script", location)
		return nil
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a run of a Glue job",
	Long:  `Start a run of a Glue job, optionally waiting until it finishes`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		startLogger := logrus.WithField("Job name", jobName)

		arguments, err := args.ParsePairs(jobArgs)
		if err != nil {
			return err
		}

		jobDriver, err := driver.NewDriver(ctx, conf)
		if err != nil {
			startLogger.WithError(err).Error("Error initializing driver")
			return err
		}
		jobDriver.PollInterval = pollInterval

		runID, err := jobDriver.StartRun(ctx, jobName, arguments)
		if err != nil {
			startLogger.WithError(err).Error("Error starting job run")
			return err
		}
		fmt.Println("Started run", runID)

		if !wait {
			return nil
		}

		status, err := jobDriver.WaitRun(ctx, jobName, runID)
		if status != nil {
			fmt.Println("Run", runID, "finished with state", status.State)
		}
		if err != nil {
			startLogger.WithField("Run ID", runID).WithError(err).Error("Error waiting for job run")
			return err
		}

		return nil
	},
}

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run the job on the lambda backend",
	Long:  `Run the job synchronously on the lambda backend and print its output`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		invokeLogger := logrus.WithField("Function", functionName)

		arguments, err := args.ParsePairs(jobArgs)
		if err != nil {
			return err
		}

		jobDriver, err := driver.NewDriver(ctx, conf)
		if err != nil {
			invokeLogger.WithError(err).Error("Error initializing driver")
			return err
		}

		res, err := jobDriver.InvokeLambda(ctx, functionName, arguments)
		if err != nil {
			invokeLogger.WithError(err).Error("Error invoking job lambda")
			return err
		}

		fmt.Print(res.Output)
		fmt.Println("Run", res.RunID, "of", res.JobName, "committed")
		return nil
	},
}
