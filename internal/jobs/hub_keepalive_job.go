package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// pinger is the slice of the websocket hub the job needs.
type pinger interface {
	Ping()
}

// HubKeepaliveJob pings the connected displays every 30 seconds so half
// open websocket connections are detected and pruned instead of lingering
// until the next broadcast fails.
type HubKeepaliveJob struct {
	hub    pinger
	cron   *cron.Cron
	logger *slog.Logger
}

// NewHubKeepaliveJob creates the keepalive job for the display hub.
func NewHubKeepaliveJob(hub pinger, logger *slog.Logger) *HubKeepaliveJob {
	return &HubKeepaliveJob{
		hub:    hub,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "hub_keepalive_job"),
	}
}

// Start begins pinging every 30 seconds.
func (j *HubKeepaliveJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.hub.Ping()
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hub keepalive job started (running every 30 seconds)")
	return nil
}

// Stop stops the keepalive job.
func (j *HubKeepaliveJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Hub keepalive job stopped")
}
