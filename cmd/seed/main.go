// seed prepara la base de datos: esquema, empresa/bodega por defecto y datos de demostración.
//
// Uso:
//
//	go run ./cmd/seed migrate
//	go run ./cmd/seed seed --company-name "Default Company"
//	go run ./cmd/seed demo --history-days 30
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-alerts-api/pkg/config"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "esquema y datos iniciales de stock-alerts-api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db-url",
				Usage:   "PostgreSQL connection string (por defecto DATABASE_URL o DB_*)",
				EnvVars: []string{"DATABASE_URL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Crea las tablas si no existen",
				Action: runMigrate,
			},
			{
				Name:  "seed",
				Usage: "Aplica el esquema y crea la empresa y bodega por defecto",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "company-name", Value: "Default Company"},
					&cli.StringFlag{Name: "company-email", Value: "admin@example.com"},
					&cli.StringFlag{Name: "warehouse-name", Value: "Main Warehouse"},
				},
				Action: runSeed,
			},
			{
				Name:  "demo",
				Usage: "Crea productos con proveedores e historial de ventas para probar las alertas",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "history-days", Value: 30, Usage: "Días de historial de ventas"},
				},
				Action: runDemo,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

// env agrupa lo que comparten los comandos.
type env struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
}

func openEnv(c *cli.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if u := c.String("db-url"); u != "" {
		cfg.DB.DatabaseURL = u
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	pool, err := postgres.NewPool(ctxOf(c), cfg.DB)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, pool: pool}, nil
}

func ctxOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}

func runMigrate(c *cli.Context) error {
	e, err := openEnv(c)
	if err != nil {
		return err
	}
	defer e.pool.Close()

	if err := postgres.Migrate(ctxOf(c), e.pool); err != nil {
		return err
	}
	e.log.Info().Msg("esquema aplicado")
	return nil
}
