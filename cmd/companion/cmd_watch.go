package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/RavenCompanion_Go/internal/event"
)

// WatchCommand runs the background jobs and prints alerts until interrupted
type WatchCommand struct{}

func (c *WatchCommand) Name() string        { return "watch" }
func (c *WatchCommand) Description() string { return "Run in the background and print daily reset alerts" }

func (c *WatchCommand) Run(ctx context.Context, s *session, args []string) error {
	app, err := s.App(ctx)
	if err != nil {
		return err
	}

	app.Bus.Subscribe(event.AlertRaised, func(_ context.Context, e event.Event) error {
		p, err := event.DecodePayload[event.AlertPayloadV1](e.Payload)
		if err != nil {
			return err
		}
		PrintWarning(s.out, "[%s] %s", titleCase.String(p.Type), p.Message)
		return nil
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Start(ctx)
	PrintInfo(s.out, "Watching for alerts, press Ctrl+C to stop")
	<-ctx.Done()
	return nil
}
