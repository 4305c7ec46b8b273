package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "waitlister",
		Short: "Waitlist page builder backend",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the waitlister service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE:  migrateUp,
	}

	migrateDownCmd = &cobra.Command{
		Use:   "down",
		Short: "Roll back applied database migrations",
		RunE:  migrateDown,
	}

	cfgFile   string
	version   string
	downSteps int
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	migrateDownCmd.Flags().IntVarP(&downSteps, "steps", "n", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(versionCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("can't start the service", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
