package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"real-api/internal/config"
	"real-api/pkg/client"

	"github.com/sirupsen/logrus"
)

func main() {
	defaults := config.Default()
	if cfg, err := config.Load(); err == nil {
		defaults = cfg
	}

	var (
		baseURL = flag.String("base-url", defaults.Client.BaseURL, "API base URL")
		action  = flag.String("action", "all", "Call to make: health, echo, all")
		message = flag.String("message", "Hello from the API tester", "Message sent to /echo")
		timeout = flag.Duration("timeout", defaults.Client.Timeout, "Round trip timeout")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	// Setup logger
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	api := client.New(client.NewConfig(*baseURL, *timeout), nil)
	logger.WithFields(logrus.Fields{
		"base_url": api.Config().BaseURL,
		"action":   *action,
	}).Debug("Starting API tester")

	ctx := context.Background()
	failed := false

	switch *action {
	case "health", "echo", "all":
	default:
		logger.WithField("action", *action).Fatal("Unknown action")
	}

	if *action == "health" || *action == "all" {
		resp, err := api.HealthCheck(ctx)
		if err != nil {
			logger.WithError(err).Error("Health check failed")
			failed = true
		} else {
			printJSON("health", resp)
		}
	}

	if *action == "echo" || *action == "all" {
		resp, err := api.Echo(ctx, map[string]string{"message": *message})
		if err != nil {
			logger.WithError(err).Error("Echo failed")
			failed = true
		} else {
			printJSON("echo", resp)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func printJSON(label string, v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", label, err)
		return
	}
	fmt.Printf("%s:\n%s\n", label, out)
}
