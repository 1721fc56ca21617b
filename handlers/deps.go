package handlers

import (
	"log/slog"
	"time"

	"growmatereport/config"
	"growmatereport/services"
)

// Deps carries what the report handlers share: the schema generated at
// startup, the session store and the report branding.
type Deps struct {
	Schema   *services.Schema
	Sessions *services.SessionStore
	Branding services.Branding
	Logger   *slog.Logger
	Now      func() time.Time
}

// NewDeps wires the handler dependencies from the loaded configuration.
func NewDeps(logger *slog.Logger, schema *services.Schema, cfg config.Config) *Deps {
	return &Deps{
		Schema:   schema,
		Sessions: services.NewSessionStore(cfg.Session.TTL),
		Branding: services.Branding{
			Organization: cfg.Report.Organization,
			ReportTitle:  cfg.Report.Title,
			FooterLines:  cfg.Report.FooterLines,
			Currency:     cfg.Report.Currency,
		},
		Logger: logger,
		Now:    time.Now,
	}
}

// SweepSessions drops report sessions that have been idle past their TTL.
// main schedules it on the app cron.
func (d *Deps) SweepSessions() {
	if n := d.Sessions.EvictIdle(); n > 0 {
		d.Logger.Info("sessions: evicted idle report sessions", "count", n, "remaining", d.Sessions.Len())
	}
}
