// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-id-keeper/internal/config"
	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/internal/service"
	"github.com/MKhiriev/go-id-keeper/models"
)

const (
	cmdIDs       = "ids"
	cmdRandomIDs = "random-ids"
	cmdDelete    = "delete"
	cmdKill      = "kill"
	cmdBackups   = "backups"
	cmdVersion   = "version"
	cmdHelp      = "help"
)

type command struct {
	name        string
	description string
	run         func(a *App, ctx context.Context) error
}

// commandTable is ordered as printed in the usage text.
func commandTable() []command {
	return []command{
		{name: cmdIDs, description: "show the identifiers currently on disk", run: (*App).showIDs},
		{name: cmdRandomIDs, description: "generate new identifiers and write them", run: (*App).randomIDs},
		{name: cmdDelete, description: "delete the id file after confirmation", run: (*App).deleteIDFile},
		{name: cmdKill, description: "terminate the running application", run: (*App).kill},
		{name: cmdBackups, description: "list recorded backups, newest first", run: (*App).listBackups},
		{name: cmdVersion, description: "show build information", run: (*App).version},
		{name: cmdHelp, description: "show this help", run: (*App).help},
	}
}

type App struct {
	services *service.Services
	console  Console
	cfg      *config.ClientConfig

	// clipboard is replaced in tests.
	clipboard func(text string) error

	logger *logger.Logger
}

func NewApp(services *service.Services, console Console, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || console == nil || cfg == nil {
		return nil, errors.New("client app: services, console and config are required")
	}

	return &App{
		services:  services,
		console:   console,
		cfg:       cfg,
		clipboard: clipboard.WriteAll,
		logger:    logger,
	}, nil
}

// Run executes the configured command. An empty command prints the usage.
func (a *App) Run(ctx context.Context) error {
	name := a.cfg.Command
	if name == "" {
		name = cmdHelp
	}

	for _, c := range commandTable() {
		if c.name != name {
			continue
		}
		if len(a.cfg.Args) > 0 {
			err := fmt.Errorf("%w for %s: %s", ErrUnexpectedArgs, name, strings.Join(a.cfg.Args, " "))
			a.console.PrintError(err)
			return err
		}

		a.logger.Debug().Str("func", "App.Run").Str("command", name).Msg("running command")

		if err := c.run(a, ctx); err != nil {
			a.console.PrintError(err)
			return err
		}
		return nil
	}

	err := fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	a.console.PrintError(err)
	a.console.PrintUsage(usage())
	return err
}

func (a *App) showIDs(ctx context.Context) error {
	report := a.services.IdentityInspector.Inspect(ctx)
	a.console.PrintInspection(report)

	if a.cfg.Output.Copy {
		a.copyToClipboard(report.DevDeviceID)
	}
	return nil
}

func (a *App) randomIDs(ctx context.Context) error {
	ids := a.services.IdentityGenerator.Generate()

	report, err := a.services.RecordUpdater.Apply(ctx, ids)
	if report.IDFile != nil {
		a.console.PrintUpdate(report)
	}
	if err != nil {
		return err
	}

	if a.cfg.Output.Copy {
		a.copyToClipboard(ids.PrimaryID)
	}
	return nil
}

func (a *App) deleteIDFile(ctx context.Context) error {
	report, err := a.services.DeleteService.Delete(ctx)
	if err != nil {
		if report.BackupPath != "" {
			a.console.PrintNotice("backup kept at " + report.BackupPath)
		}
		return err
	}

	a.console.PrintDelete(report)
	return nil
}

func (a *App) kill(ctx context.Context) error {
	outcome, err := a.services.ProcessService.Terminate(ctx)
	a.console.PrintTermination(a.cfg.App.ProcessName, outcome, err)

	// not finding the process is a normal outcome
	return err
}

func (a *App) listBackups(ctx context.Context) error {
	// -limit 0 is replaced by the default limit, so -all is the way to list everything
	limit := a.cfg.Output.BackupsLimit
	if a.cfg.Output.AllBackups {
		limit = 0
	}

	entries, err := a.services.BackupHistoryService.List(ctx, limit)
	if err != nil {
		return err
	}

	a.console.PrintBackups(entries)
	return nil
}

func (a *App) version(ctx context.Context) error {
	a.console.PrintBuildInfo(a.services.AppInfoService.GetBuildInfo(ctx))
	return nil
}

func (a *App) help(context.Context) error {
	a.console.PrintUsage(usage())
	return nil
}

// copyToClipboard never fails the command; a missing clipboard is common on
// headless hosts.
func (a *App) copyToClipboard(value string) {
	if value == "" || value == models.NotFound {
		return
	}
	if err := a.clipboard(value); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.copyToClipboard").Msg("clipboard unavailable")
		a.console.PrintWarning("could not copy to clipboard: " + err.Error())
		return
	}
	a.console.PrintNotice("copied to clipboard")
}

func usage() string {
	var b strings.Builder

	b.WriteString("Usage: idkeeper [flags] <command>\n\nCommands:\n")
	for _, c := range commandTable() {
		fmt.Fprintf(&b, "  %-11s %s\n", c.name, c.description)
	}
	b.WriteString("\nRun idkeeper -h to list the flags.\n")

	return b.String()
}
