package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/osse101/RavenCompanion_Go/internal/bridge"
)

var errUsage = errors.New("wrong number of arguments")

func usage(format string) error {
	return fmt.Errorf("%w, usage: %s", errUsage, format)
}

// ToggleCommand checks or unchecks an item as collected
type ToggleCommand struct{}

func (c *ToggleCommand) Name() string        { return "toggle" }
func (c *ToggleCommand) Description() string { return "Mark an item collected: toggle <cosmetic|trophy> <id> <on|off>" }

func (c *ToggleCommand) Run(ctx context.Context, s *session, args []string) error {
	if len(args) != 3 {
		return usage("toggle <cosmetic|trophy> <id> <on|off>")
	}
	collected, err := parseSwitch(args[2])
	if err != nil {
		return err
	}
	app, err := s.App(ctx)
	if err != nil {
		return err
	}
	res := app.Bridge.ToggleCollected(ctx, bridge.ToggleCollectedRequest{Type: args[0], ID: resolveID(app, args[1]), Collected: collected})
	return s.printResult(res, res.Success, res.Error)
}

// TierCommand sets one trophy tier flag
type TierCommand struct{}

func (c *TierCommand) Name() string        { return "tier" }
func (c *TierCommand) Description() string { return "Set a trophy tier: tier <trophy> <base|golden|enchanted> <on|off>" }

func (c *TierCommand) Run(ctx context.Context, s *session, args []string) error {
	if len(args) != 3 {
		return usage("tier <trophy> <base|golden|enchanted> <on|off>")
	}
	checked, err := parseSwitch(args[2])
	if err != nil {
		return err
	}
	app, err := s.App(ctx)
	if err != nil {
		return err
	}
	res := app.Bridge.SaveTrophyTierState(ctx, bridge.SaveTrophyTierRequest{TrophyID: resolveID(app, args[0]), Tier: args[1], Checked: checked})
	return s.printResult(res, res.Success, res.Error)
}

// MaterialCommand sets an owned material quantity
type MaterialCommand struct{}

func (c *MaterialCommand) Name() string        { return "material" }
func (c *MaterialCommand) Description() string { return "Set owned materials: material <cosmetic> <material> <quantity>" }

func (c *MaterialCommand) Run(ctx context.Context, s *session, args []string) error {
	if len(args) != 3 {
		return usage("material <cosmetic> <material> <quantity>")
	}
	qty, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[2])
	}
	app, err := s.App(ctx)
	if err != nil {
		return err
	}
	res := app.Bridge.SetMaterial(ctx, bridge.SetMaterialRequest{ID: resolveID(app, args[0]), Material: args[1], Quantity: qty})
	return s.printResult(res, res.Success, res.Error)
}

// CounterCommand shows or changes a counter
type CounterCommand struct{}

func (c *CounterCommand) Name() string        { return "counter" }
func (c *CounterCommand) Description() string { return "Show or change a counter: counter <id> [+N|-N|=N|reset]" }

func (c *CounterCommand) Run(ctx context.Context, s *session, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usage("counter <id> [+N|-N|=N|reset]")
	}
	opArg := ""
	if len(args) == 2 {
		opArg = args[1]
	}
	op, err := parseCounterOp(opArg)
	if err != nil {
		return err
	}
	app, err := s.App(ctx)
	if err != nil {
		return err
	}

	id := args[0]
	var res bridge.CounterResult
	switch op.kind {
	case "add":
		res = app.Bridge.IncrementCounter(ctx, bridge.IncrementCounterRequest{ID: id, Amount: op.value})
	case "set":
		res = app.Bridge.SetCounter(ctx, bridge.SetCounterRequest{ID: id, Value: op.value})
	case "reset":
		res = app.Bridge.ResetCounter(ctx, bridge.CounterRequest{ID: id})
	default:
		// adding zero reads the counter without changing it
		res = app.Bridge.IncrementCounter(ctx, bridge.IncrementCounterRequest{ID: id, Amount: 0})
	}
	return s.printResult(res, res.Success, res.Error)
}

// TrophyCounterCommand shows which counter a trophy uses
type TrophyCounterCommand struct{}

func (c *TrophyCounterCommand) Name() string        { return "trophy-counter" }
func (c *TrophyCounterCommand) Description() string { return "Show the counter behind a trophy: trophy-counter <trophy>" }

func (c *TrophyCounterCommand) Run(ctx context.Context, s *session, args []string) error {
	if len(args) != 1 {
		return usage("trophy-counter <trophy>")
	}
	app, err := s.App(ctx)
	if err != nil {
		return err
	}
	res := app.Bridge.TrophyCounter(ctx, bridge.TrophyCounterRequest{TrophyID: resolveID(app, args[0])})
	return s.printResult(res, res.Success, res.Error)
}

// MilestoneCommand records or removes a tier milestone
type MilestoneCommand struct{}

func (c *MilestoneCommand) Name() string { return "milestone" }
func (c *MilestoneCommand) Description() string {
	return "Record a milestone: milestone <id> <tier> <collected|purchased|gambled> [count], or milestone <id> <tier> remove"
}

func (c *MilestoneCommand) Run(ctx context.Context, s *session, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return usage("milestone <id> <tier> <method|remove> [count]")
	}
	app, err := s.App(ctx)
	if err != nil {
		return err
	}

	if args[2] == "remove" {
		res := app.Bridge.RemoveMilestone(ctx, bridge.RemoveMilestoneRequest{ID: args[0], Tier: args[1]})
		return s.printResult(res, res.Success, res.Error)
	}

	count := 0
	if len(args) == 4 {
		if count, err = strconv.Atoi(args[3]); err != nil {
			return fmt.Errorf("invalid count %q", args[3])
		}
	}
	res := app.Bridge.RecordMilestone(ctx, bridge.RecordMilestoneRequest{ID: args[0], Tier: args[1], Method: args[2], Count: count})
	return s.printResult(res, res.Success, res.Error)
}

// TargetsCommand lists, adds or removes pinned targets
type TargetsCommand struct{}

func (c *TargetsCommand) Name() string { return "targets" }
func (c *TargetsCommand) Description() string {
	return "Pinned targets: targets [add <id> <name> <cosmetic|trophy> | remove <id>]"
}

func (c *TargetsCommand) Run(ctx context.Context, s *session, args []string) error {
	app, err := s.App(ctx)
	if err != nil {
		return err
	}

	var res bridge.TargetsResult
	switch {
	case len(args) == 0:
		res = app.Bridge.ListTargets(ctx)
	case args[0] == "add" && len(args) == 4:
		res = app.Bridge.AddTarget(ctx, bridge.AddTargetRequest{ID: resolveID(app, args[1]), Name: args[2], Type: args[3]})
	case args[0] == "remove" && len(args) == 2:
		res = app.Bridge.RemoveTarget(ctx, bridge.RemoveTargetRequest{ID: args[1]})
	default:
		return usage("targets [add <id> <name> <cosmetic|trophy> | remove <id>]")
	}
	return s.printResult(res, res.Success, res.Error)
}

// ResetCommand clears counters or all progress
type ResetCommand struct{}

func (c *ResetCommand) Name() string        { return "reset" }
func (c *ResetCommand) Description() string { return "Clear progress: reset <counters|all> --yes" }

func (c *ResetCommand) Run(ctx context.Context, s *session, args []string) error {
	if len(args) != 2 || args[1] != confirmYes {
		return usage("reset <counters|all> --yes")
	}
	app, err := s.App(ctx)
	if err != nil {
		return err
	}

	var res bridge.Result
	switch args[0] {
	case "counters":
		res = app.Bridge.ResetAllCounters(ctx)
	case "all":
		res = app.Bridge.ResetAllProgress(ctx)
	default:
		return usage("reset <counters|all> --yes")
	}
	return s.printResult(res, res.Success, res.Error)
}
