package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arton_garage/internal/adapter/http/routes"
	"arton_garage/internal/infrastructure/config"
	"arton_garage/internal/infrastructure/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg        config.Config
	exportPath string
)

var rootCmd = &cobra.Command{
	Use:   "arton-garage",
	Short: "Arton Garage API server",
	Long: `Serves the storefront and back-office API of the garage.

Run without arguments to start the HTTP server. Configuration comes from the
environment (and a .env file in the working directory).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Setup(cfg.LogLevel, cfg.IsProduction())
		return nil
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var exportFinanceCmd = &cobra.Command{
	Use:   "export-finance",
	Short: "Write the finance ledger to an XLSX file",
	Long: `Builds the same spreadsheet as GET /v1/admin/finance/export from the
configured storage backend and writes it to --out.

Example:
  arton-garage export-finance --out financeiro.xlsx`,
	RunE: runExportFinance,
}

func init() {
	exportFinanceCmd.Flags().StringVarP(&exportPath, "out", "o", "", "Output file (default: financeiro-YYYY-MM-DD.xlsx)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportFinanceCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Printf("[boot][cli] failed to startup the application err=%v", err)
		return err
	}
	return nil
}

func runExportFinance(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := routes.NewApplication(ctx, cfg)
	if err != nil {
		return err
	}

	path := exportPath
	if path == "" {
		path = fmt.Sprintf("financeiro-%s.xlsx", time.Now().Format("2006-01-02"))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := app.Finance.Export(ctx, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("[finance][cli] ledger exported path=%s", path)
	return nil
}
