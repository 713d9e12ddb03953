package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weather-dashboard/configs"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/resource"
)

// @title Weather Dashboard API
// @version 1.0
// @description Accounts, favorite cities and weather readings projected for display.
// @BasePath /api
func main() {
	var env *configs.EnvConfig

	rootCmd := &cobra.Command{
		Use:           "weather-dashboard",
		Short:         "Weather dashboard API and display tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			env = configs.LoadEnv(envFile)

			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				log.SetLevel(level)
			}
			if err := resource.Load(env.PropertiesPath); err != nil {
				return err
			}
			if err := msg.Load(env.MessagesPath); err != nil {
				return err
			}

			// environment wins over the properties file
			if env.Port != "" {
				resource.Set("app.server.port", env.Port)
			}
			if env.ContextPath != "" {
				resource.Set("app.server.context-path", env.ContextPath)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional dotenv file loaded before reading configuration")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newServeCommand(), newDisplayCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Sync()
		os.Exit(1)
	}
}
