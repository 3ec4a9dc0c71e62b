package main

import (
	"context"
	"fmt"
	"log"

	"coffee-order/config"
	_ "coffee-order/docs"
	"coffee-order/middleware"
	"coffee-order/repositories"
	"coffee-order/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

type ServeOptions struct {
	Memory bool
}

func NewRootCommand() *cobra.Command {
	serveOpts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:           "coffee-order",
		Short:         "Coffee ordering API",
		Long:          "Recipe resolution, drink customization pricing and cart checkout over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(config.LoadConfig(), serveOpts)
		},
	}
	cmd.Flags().BoolVar(&serveOpts.Memory, "memory", false, "serve the demo menu from memory")

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewCacheCommand())
	return cmd
}

func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(config.LoadConfig(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Memory, "memory", false, "serve the demo menu from memory")
	return cmd
}

func serve(cfg *config.Config, opts *ServeOptions) error {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	deps, cleanup, err := routes.NewDeps(cfg, opts.Memory)
	if err != nil {
		return err
	}
	defer cleanup()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, deps)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", cfg.AppEnv)
	if opts.Memory {
		log.Println("Serving the demo menu from memory")
	}
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	return router.Run(port)
}

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.MigrateUp(config.LoadConfig())
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			return config.MigrateDown(config.LoadConfig(), steps)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	return cmd
}

func NewCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the redis catalog cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "flush",
		Short: "Drop cached catalog, size and recipe reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			rdb := config.ConnectRedis(cfg)
			if rdb == nil {
				return fmt.Errorf("redis is not reachable")
			}
			defer config.CloseRedis(rdb)

			removed, err := repositories.NewCachedStore(nil, rdb, cfg.CacheTTL).InvalidateCatalog(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached keys\n", removed)
			return nil
		},
	})

	return cmd
}
