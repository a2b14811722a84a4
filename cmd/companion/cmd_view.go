package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/stats"
)

var titleCase = cases.Title(language.English)

// SummaryCommand prints the collection dashboard
type SummaryCommand struct{}

func (c *SummaryCommand) Name() string        { return "summary" }
func (c *SummaryCommand) Description() string { return "Show collection progress and renown" }

func (c *SummaryCommand) Run(ctx context.Context, s *session, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the raw dashboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := s.App(ctx)
	if err != nil {
		return err
	}
	res := app.Bridge.Summary(ctx)
	if *asJSON || !res.Success {
		return s.printResult(res, res.Success, res.Error)
	}

	printDashboard(s.out, res.Dashboard)
	return nil
}

func printDashboard(w io.Writer, d *stats.Dashboard) {
	PrintHeader(w, "Collection")
	PrintInfo(w, "Trophies:  %d/%d (%d%%)", d.Trophies.Collected, d.Trophies.Total, d.TrophyPercent)
	PrintInfo(w, "Cosmetics: %d/%d (%d%%)", d.Cosmetics.Collected, d.Cosmetics.Total, d.CosmeticPercent)
	PrintInfo(w, "Renown:    %.0f / %.0f", d.TotalRenown, d.MaxRenown)
	PrintInfo(w, "Silver spent on upgrades: %d", d.Trophies.SilverSpent)

	PrintHeader(w, "Trophy Tiers")
	for _, tier := range domain.AllTiers {
		tc := d.Trophies.Tiers[tier]
		fmt.Fprintf(w, "  %-10s %d/%d\n", titleCase.String(string(tier)), tc.Collected, tc.Available)
	}

	printGroups(w, "Trophy Categories", d.TrophyGroups)
	printGroups(w, "Cosmetic Categories", d.CosmeticGroups)

	if len(d.Trophies.StatBonuses) > 0 {
		PrintHeader(w, "Stat Bonuses")
		names := make([]string, 0, len(d.Trophies.StatBonuses))
		for name, v := range d.Trophies.StatBonuses {
			if v != 0 {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %-28s +%g%%\n", name, d.Trophies.StatBonuses[name])
		}
	}
}

func printGroups(w io.Writer, title string, groups []stats.CategoryBreakdown) {
	if len(groups) == 0 {
		return
	}
	PrintHeader(w, title)
	for _, g := range groups {
		line := fmt.Sprintf("%-24s %d/%d  renown %.0f/%.0f", g.Category, g.Collected, g.Total, g.RenownEarned, g.RenownPossible)
		if g.Complete {
			PrintSuccess(w, "%s", line)
		} else {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

// StatsCommand prints the global acquisition statistics
type StatsCommand struct{}

func (c *StatsCommand) Name() string        { return "stats" }
func (c *StatsCommand) Description() string { return "Show gambled/purchased totals and drop luck" }

func (c *StatsCommand) Run(ctx context.Context, s *session, args []string) error {
	app, err := s.App(ctx)
	if err != nil {
		return err
	}
	res := app.Bridge.GetGlobalStats(ctx)
	return s.printResult(res, res.Success, res.Error)
}

// TrophiesCommand lists trophies through the overlay filters
type TrophiesCommand struct{}

func (c *TrophiesCommand) Name() string        { return "trophies" }
func (c *TrophiesCommand) Description() string { return "List trophies (--type --search --tier --status --category)" }

func (c *TrophiesCommand) Run(ctx context.Context, s *session, args []string) error {
	var f stats.TrophyFilter
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.StringVar(&f.Type, "type", "", "trophy type, e.g. \"Creature Trophies\"")
	fs.StringVar(&f.Search, "search", "", "name substring")
	fs.StringVar(&f.Tier, "tier", "", "only trophies with this tier collected")
	fs.StringVar(&f.Status, "status", "", "all-tiers, partial, base-only or none")
	fs.StringVar(&f.Category, "category", "", "creature category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := s.App(ctx)
	if err != nil {
		return err
	}
	res := app.Bridge.FilterTrophies(ctx, f)
	return s.printResult(res, res.Success, res.Error)
}

// CosmeticsCommand lists cosmetics through the overlay filters
type CosmeticsCommand struct{}

func (c *CosmeticsCommand) Name() string { return "cosmetics" }
func (c *CosmeticsCommand) Description() string {
	return "List cosmetics (--level1 --level2 --search --location)"
}

func (c *CosmeticsCommand) Run(ctx context.Context, s *session, args []string) error {
	var f stats.CosmeticFilter
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.StringVar(&f.Level1, "level1", "", "top-level category")
	fs.StringVar(&f.Level2, "level2", "", "sub-category")
	fs.StringVar(&f.Search, "search", "", "name substring")
	fs.StringVar(&f.Location, "location", "", "location substring")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := s.App(ctx)
	if err != nil {
		return err
	}
	res := app.Bridge.FilterCosmetics(ctx, f)
	return s.printResult(res, res.Success, res.Error)
}
