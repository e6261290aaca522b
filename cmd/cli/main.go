package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bigredeye/students/pkg/client/students"
)

const defaultEndpoint = "http://localhost:8080"

var log *zap.Logger

var endpoint string

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func unwrap[T any](value T, err error) T {
	check(err)
	return value
}

var rootCmd = &cobra.Command{
	Use:          "students",
	Short:        "Student records client",
	SilenceUsage: true,
}

func newClient() (*students.Client, error) {
	return students.NewClient(endpoint)
}

func initLogging() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.ConsoleSeparator = " "
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.StampMilli)
	log = unwrap(config.Build())
}

func initCommands() {
	defaultURL := os.Getenv("STUDENTS_ENDPOINT")
	if defaultURL == "" {
		defaultURL = defaultEndpoint
	}
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", defaultURL, "Student records server URL")

	rootCmd.AddCommand(makeListCommand())
	rootCmd.AddCommand(makeGetCommand())
	rootCmd.AddCommand(makeAddCommand())
	rootCmd.AddCommand(makeUpdateCommand())
	rootCmd.AddCommand(makeDeleteCommand())
	rootCmd.AddCommand(makeImportCommand())
	rootCmd.AddCommand(makeStressCommand())
}

func init() {
	initLogging()
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s\n", err.Error())
		os.Exit(1)
	}
}
