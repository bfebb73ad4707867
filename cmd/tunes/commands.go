package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tunes/internal/config"
)

// createRootCommand создает корневую команду с настроенными подкомандами.
// Без подкоманды запускается TUI.
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	var configPath, musicDir string

	rootCmd := &cobra.Command{
		Use:   "tunes",
		Short: "A simple terminal music player",
		Long:  `A simple terminal music player for a local directory of mp3 files.`,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.setup(configPath, musicDir)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the config file")
	rootCmd.PersistentFlags().StringVar(&musicDir, "music-dir", "", "managed music directory (overrides music_dir)")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createAddCommand())
	rootCmd.AddCommand(app.createPlayCommand(ctx))

	return rootCmd
}
