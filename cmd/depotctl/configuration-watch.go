package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/depothq/depot/pkg/config"
)

// configurationWatchCmd represents the configuration watch command
var configurationWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the config file and reload configuration on change",
	Long: `Watch the config file and reload configuration when it changes.

Each successful reload prints the effective configuration attributes.

Example:
  depotctl configuration watch`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchConfiguration(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationWatchCmd)
}

func watchConfiguration() error {
	cfg := config.Get()
	path := cfg.ConfigFilePath()

	watcher, err := config.Watch(path, func(err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] Reload failed: %v\n", time.Now().Format(time.RFC3339), err)
			return
		}
		fmt.Printf("[%s] Configuration reloaded\n", time.Now().Format(time.RFC3339))
		fmt.Print(config.Get().FormatText())
	})
	if err != nil {
		return fmt.Errorf("failed to watch file %s: %w", path, err)
	}
	defer func() { _ = watcher.Close() }()

	fmt.Printf("Watching %s for configuration changes\n", path)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("Shutting down")
	return nil
}
