package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osse101/RavenCompanion_Go/internal/bootstrap"
	"github.com/osse101/RavenCompanion_Go/internal/config"
)

// session carries the configuration and the lazily built app of one run
type session struct {
	cfg *config.Config
	out io.Writer
	app *bootstrap.App
}

// App builds the service graph on first use
func (s *session) App(ctx context.Context) (*bootstrap.App, error) {
	if s.app != nil {
		return s.app, nil
	}
	app, err := bootstrap.Build(ctx, s.cfg)
	if err != nil {
		return nil, err
	}
	s.app = app
	return app, nil
}

// Close shuts the app down if it was built
func (s *session) Close(ctx context.Context) {
	if s.app != nil {
		bootstrap.GracefulShutdown(ctx, s.app)
		s.app = nil
	}
}

// printResult writes a bridge result as indented JSON and turns a failed
// result into an error
func (s *session) printResult(v any, success bool, msg string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, string(data))
	if !success {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

// parseSwitch reads on/off style arguments
func parseSwitch(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "yes", "1", "checked":
		return true, nil
	case "off", "false", "no", "0", "unchecked":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", arg)
}

// counterOp is a parsed counter argument: +N, -N, =N or reset
type counterOp struct {
	kind  string // "add", "set", "reset", "show"
	value int
}

func parseCounterOp(arg string) (counterOp, error) {
	switch {
	case arg == "":
		return counterOp{kind: "show"}, nil
	case strings.EqualFold(arg, "reset"):
		return counterOp{kind: "reset"}, nil
	case strings.HasPrefix(arg, "="):
		n, err := strconv.Atoi(arg[1:])
		if err != nil {
			return counterOp{}, fmt.Errorf("invalid value %q", arg)
		}
		return counterOp{kind: "set", value: n}, nil
	case strings.HasPrefix(arg, "+"), strings.HasPrefix(arg, "-"):
		n, err := strconv.Atoi(arg)
		if err != nil {
			return counterOp{}, fmt.Errorf("invalid amount %q", arg)
		}
		return counterOp{kind: "add", value: n}, nil
	}
	return counterOp{}, fmt.Errorf("expected +N, -N, =N or reset, got %q", arg)
}
