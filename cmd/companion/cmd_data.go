package main

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/RavenCompanion_Go/internal/bootstrap"
	"github.com/osse101/RavenCompanion_Go/internal/config"
	"github.com/osse101/RavenCompanion_Go/internal/validation"
)

// resolveID maps a typed name or id to a catalog id. Unknown input is
// passed through so the bridge can report it.
func resolveID(app *bootstrap.App, input string) string {
	if id, ok := app.Catalog.Resolve(input); ok {
		return id
	}
	return input
}

// DataCommand prints the loaded catalog
type DataCommand struct{}

func (c *DataCommand) Name() string        { return "data" }
func (c *DataCommand) Description() string { return "Print the loaded item data and load warnings" }

func (c *DataCommand) Run(ctx context.Context, s *session, args []string) error {
	app, err := s.App(ctx)
	if err != nil {
		return err
	}
	res := app.Bridge.GetData(ctx)
	return s.printResult(res, res.Success, res.Error)
}

// ReloadCommand reloads the data files and reports warnings
type ReloadCommand struct{}

func (c *ReloadCommand) Name() string        { return "reload" }
func (c *ReloadCommand) Description() string { return "Reload the data files and list warnings" }

func (c *ReloadCommand) Run(ctx context.Context, s *session, args []string) error {
	app, err := s.App(ctx)
	if err != nil {
		return err
	}
	res := app.Bridge.ReloadData(ctx)
	if !res.Success {
		return fmt.Errorf("%s", res.Error)
	}
	PrintInfo(s.out, "%d cosmetics, %d trophies", len(res.Cosmetics), len(res.Trophies))
	for _, w := range res.Warnings {
		PrintWarning(s.out, "%s", w)
	}
	if len(res.Warnings) == 0 {
		PrintSuccess(s.out, "No warnings")
	}
	return nil
}

// CheckDataCommand validates the data files against their JSON schemas
type CheckDataCommand struct{}

func (c *CheckDataCommand) Name() string        { return "check-data" }
func (c *CheckDataCommand) Description() string { return "Validate the data files against their JSON schemas" }

func (c *CheckDataCommand) Run(ctx context.Context, s *session, args []string) error {
	PrintHeader(s.out, "Checking data files")
	v := validation.NewSchemaValidator()

	failed := 0
	for _, name := range []string{config.FileCosmetics, config.FileTrophies} {
		path := s.cfg.DataFile(name)
		if _, err := os.Stat(path); err != nil {
			PrintWarning(s.out, "%s: not found at %s", name, path)
			continue
		}
		schema, _ := validation.SchemaFor(name)
		if err := v.ValidateFile(path, schema); err != nil {
			PrintError(s.out, "%s: %v", name, err)
			failed++
			continue
		}
		PrintSuccess(s.out, "%s OK", name)
	}

	if failed > 0 {
		return fmt.Errorf("%d data file(s) failed validation", failed)
	}
	return nil
}
