package main

import (
	"os"

	"github.com/spf13/pflag"
	logger "github.com/zerok-ai/zk-utils-go/logs"

	"github.com/zerok-ai/zk-otel-datagen/config"
	"github.com/zerok-ai/zk-otel-datagen/runner"
)

var LOG_TAG = "main"

func main() {
	var configPath string
	var only string
	var seed int64
	var sizeMB float64
	var verbose bool
	var outputDir string

	pflag.StringVarP(&configPath, "config", "c", "", "Path to a yaml config file")
	pflag.StringVar(&only, "only", "all", "Generate only this signal or metric kind")
	pflag.Int64Var(&seed, "seed", 42, "Seed for the per-generator random streams")
	pflag.Float64Var(&sizeMB, "size-mb", 0, "Target file size in MB; outputs get a _large suffix")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	pflag.StringVar(&outputDir, "output-dir", "", "Directory to write fixture files to")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error(LOG_TAG, "Error while loading config: ", err)
		os.Exit(1)
	}

	//Flags override file/env config only when set explicitly
	if pflag.CommandLine.Changed("only") {
		cfg.Only = only
	}
	if pflag.CommandLine.Changed("seed") {
		cfg.Seed = seed
	}
	if pflag.CommandLine.Changed("size-mb") {
		cfg.SizeMB = sizeMB
	}
	if pflag.CommandLine.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if pflag.CommandLine.Changed("output-dir") {
		cfg.OutputDir = outputDir
	}

	if err := cfg.Validate(); err != nil {
		logger.Error(LOG_TAG, "Invalid configuration: ", err)
		os.Exit(1)
	}

	if err := runner.Run(cfg); err != nil {
		logger.Error(LOG_TAG, "Error while generating fixtures: ", err)
		os.Exit(1)
	}
}
