package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"taskman/internals/auth"
	"taskman/internals/config"
	"taskman/internals/menu"
	"taskman/internals/session"
	"taskman/internals/snapshot"
	"taskman/internals/storage"
	"taskman/internals/tasks"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "taskman",
		Short:         "Personal task tracker with a text menu",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to configuration file")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("taskman: %v", err)
	}
}

func run(configPath string) error {
	cfg := config.MustLoad(configPath)
	if cfg.Log.Debug {
		log.SetLevel(log.DebugLevel)
	}

	store, err := storage.Open(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()
	log.WithField("path", cfg.Database.SQLitePath).Debug("database connected")

	taskStore, err := tasks.New(store.DB)
	if err != nil {
		log.Fatalf("Failed to initialize task store: %v", err)
	}

	m := menu.New(
		os.Stdin,
		os.Stdout,
		auth.New(store.DB),
		session.New(),
		taskStore,
		snapshot.New(cfg.Snapshot.Dir, taskStore),
	)
	return m.Run()
}
