package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life-console/console"
	"github.com/sheikhrachel/go-life-console/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	verbose := flag.Bool("v", false, "log diagnostics to stderr")
	flag.Parse()

	if !*verbose {
		utils.SetLogger(nil)
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		utils.Logf("using default configuration: %v", err)
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n🛑 Shutting down gracefully...")
		os.Exit(0)
	}()

	if err = console.NewSession(os.Stdin, os.Stdout, config).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
