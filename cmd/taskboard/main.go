// @title        Taskboard API
// @version      1.0
// @description  JSON endpoints of the task board web tier.
// @BasePath     /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskboard/internal/app"
	"taskboard/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Web front end for the task API",
	Long: `taskboard serves the task list, user admin, dashboard and month calendar pages
on top of the upstream task API, and can print or export the same data from the shell.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return app.Run(cfg)
	},
}

var (
	calYear  int
	calMonth int
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print a month grid of tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices()
		if err != nil {
			return err
		}
		return printCalendar(cmd.Context(), cmd.OutOrStdout(), svc, calYear, calMonth)
	},
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:       "export <csv|pdf>",
	Short:     "Export tasks as CSV or the month calendar as PDF",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"csv", "pdf"},
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices()
		if err != nil {
			return err
		}
		return exportTasks(cmd.Context(), svc, args[0], exportOut, calYear, calMonth)
	},
}

func loadServices() (*app.Services, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return app.NewServices(cfg)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the yaml config")

	calendarCmd.Flags().IntVar(&calYear, "year", 0, "year (default current)")
	calendarCmd.Flags().IntVar(&calMonth, "month", 0, "month 1-12 (default current)")

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default generated name)")
	exportCmd.Flags().IntVar(&calYear, "year", 0, "calendar year for pdf (default current)")
	exportCmd.Flags().IntVar(&calMonth, "month", 0, "calendar month for pdf (default current)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
