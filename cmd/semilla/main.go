// Command semilla populates a remote sales API with synthetic test data
// (usuarios, productos, clientes) for development and staging environments.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"semilla/internal/api"
	"semilla/internal/config"
	"semilla/internal/logging"
	"semilla/internal/seed"
)

var (
	flagURL       string
	flagUsuarios  int
	flagProductos int
	flagClientes  int
	flagLogFile   string
)

var rootCmd = &cobra.Command{
	Use:           "semilla",
	Short:         "Seed the sales API with synthetic test data",
	Long:          "semilla generates schema-valid fake usuarios, productos and clientes and submits them to the API at RENDER_EXTERNAL_URL.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&flagURL, "url", "", "base URL of the API (overrides RENDER_EXTERNAL_URL)")
	rootCmd.Flags().IntVar(&flagUsuarios, "usuarios", 10, "number of usuarios to create")
	rootCmd.Flags().IntVar(&flagProductos, "productos", 30, "number of productos to create")
	rootCmd.Flags().IntVar(&flagClientes, "clientes", 20, "number of clientes to create")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "log file path (overrides LOG_FILE)")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	// Best effort; real deployments set the environment directly.
	_ = godotenv.Load()

	if flagURL != "" {
		os.Setenv("RENDER_EXTERNAL_URL", flagURL)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("usuarios") {
		cfg.NumUsuarios = flagUsuarios
	}
	if cmd.Flags().Changed("productos") {
		cfg.NumProductos = flagProductos
	}
	if cmd.Flags().Changed("clientes") {
		cfg.NumClientes = flagClientes
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{
		FilePath: cfg.LogFile,
		Level:    cfg.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("open log sink: %w", err)
	}
	defer closeLog()

	client := api.NewClient(api.Options{
		BaseURL: cfg.BaseURL(),
		Timeout: cfg.HTTPTimeout,
		Retries: cfg.HTTPRetries,
	})

	seeder := seed.NewSeeder(client, seed.NewFactory(), logger)
	res, err := seeder.Run(cmd.Context(), seed.Options{
		NumUsuarios:  cfg.NumUsuarios,
		NumProductos: cfg.NumProductos,
		NumClientes:  cfg.NumClientes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✨ Seeding completed: %d records created on %s\n", res.Attempted(), cfg.BaseURL())
	fmt.Println("📧 All seeded usuarios have the password: password123")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Seeding failed: %v\n", err)
		os.Exit(1)
	}
}
