package main

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"growmatereport/collections"
	"growmatereport/config"
	"growmatereport/handlers"
	"growmatereport/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()

	var deps *handlers.Deps

	// Create the catalog collection, seed it and build the form schema on startup.
	// A malformed catalog stops the server.
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := collections.Setup(app); err != nil {
			return err
		}
		if cfg.Catalog.Seed {
			if err := collections.SeedCatalog(app, services.DefaultCatalog()); err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
		}

		catalog, err := collections.LoadCatalog(app)
		if err != nil {
			return err
		}
		schema, err := services.GenerateSchema(catalog)
		if err != nil {
			return err
		}
		app.Logger().Info("report schema ready",
			"products", len(catalog.ProductRefs()),
			"fields", len(schema.Fields()),
		)

		deps = handlers.NewDeps(app.Logger(), schema, *cfg)
		if err := app.Cron().Add("reportSessionSweep", cfg.Session.Sweep, deps.SweepSessions); err != nil {
			return fmt.Errorf("schedule session sweep: %w", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		sessions := handlers.SessionMiddleware(deps)

		se.Router.GET("/healthz", handlers.HandleHealth())
		se.Router.GET("/", handlers.HandleReportForm(deps)).BindFunc(sessions)

		report := se.Router.Group("/report")
		report.BindFunc(sessions)
		report.POST("", handlers.HandleReportSubmit(deps))
		report.POST("/total", handlers.HandleReportTotal(deps))
		report.POST("/validate", handlers.HandleFieldValidate(deps))
		report.GET("/products", handlers.HandleProductSearch(deps))
		report.GET("/download", handlers.HandleReportDownloadPDF(deps))
		report.GET("/download/excel", handlers.HandleReportDownloadExcel(deps))
		report.POST("/share", handlers.HandleReportShare(deps))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
