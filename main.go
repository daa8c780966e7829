// Package main provides the sunpath entry point: it renders today's sun path
// against the solstices and refreshes the status badges.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/devskill-org/sunpath/runner"
)

func main() {
	// Command line flags
	var (
		configFile = flag.String("config", "", "Configuration file path (defaults are used when empty)")
		envFile    = flag.String("env", ".env", "Dotenv file with SUNPATH_* overrides")
		date       = flag.String("date", "", "Day to process as YYYYMMDD or YYYY-MM-DD (defaults to today)")
		outputDir  = flag.String("out", "", "Output directory for the chart and the badges")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	config, err := loadConfig(*configFile, *envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}
	if *date != "" {
		config.Date = *date
	}
	if *outputDir != "" {
		config.OutputDir = *outputDir
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
		os.Exit(1)
	}

	logger := runner.NewLogger(config, os.Stdout)
	logger.Debug().Str("config", config.String()).Msg("configuration loaded")

	if _, err := runner.NewRunner(config, logger).Run(); err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func loadConfig(configFile, envFile string) (*runner.Config, error) {
	config := runner.DefaultConfig()
	if configFile != "" {
		var err error
		if config, err = runner.LoadConfig(configFile); err != nil {
			return nil, err
		}
	}

	if err := config.LoadEnv(envFile); err != nil {
		return nil, err
	}
	return config, nil
}

func showHelp() {
	fmt.Println("sunpath - Sun position and path compared to the solstices")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Computes the altitude and azimuth of the sun every 5 minutes over a day for a")
	fmt.Println("  fixed location, compares it with the summer and winter solstices and writes:")
	fmt.Println()
	fmt.Println("  - position_soleil.png     two-panel chart (azimuth/altitude, time/altitude)")
	fmt.Println("  - last_update.json        badge with the localized date")
	fmt.Println("  - current_altitude.json   badge with the current sun altitude")
	fmt.Println("  - current_azimuth.json    badge with the current sun azimuth")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  sunpath [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Today, Brest, files in the current directory")
	fmt.Println("  sunpath")
	fmt.Println()
	fmt.Println("  # Summer solstice 2024 written to ./public")
	fmt.Println("  sunpath -date=20240621 -out=public")
	fmt.Println()
	fmt.Println("  # Custom configuration")
	fmt.Println("  sunpath --config=config.json")
}
