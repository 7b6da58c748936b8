// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
)

// authMode tells dispatch whether a command needs the saved session.
type authMode int

const (
	authNone authMode = iota
	authOptional
	authRequired
)

type command struct {
	usage string
	auth  authMode
	run   func(ctx context.Context, args []string) error
}

// App dispatches command-line arguments to the client services and prints
// the results.
type App struct {
	services *service.ClientServices
	in       io.Reader
	out      io.Writer
	commands map[string]command
	jsonOut  bool

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the client application. Commands read from in (shell mode)
// and write their results to out.
func NewApp(services *service.ClientServices, in io.Reader, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}

	a := &App{
		services: services,
		in:       in,
		out:      out,
		logger:   logger,
	}

	a.commands = map[string]command{
		"register":   {usage: "create an account and log in", auth: authNone, run: a.register},
		"login":      {usage: "log in and save the session", auth: authNone, run: a.login},
		"logout":     {usage: "forget the saved session", auth: authNone, run: a.logout},
		"whoami":     {usage: "show the logged in user", auth: authNone, run: a.whoami},
		"products":   {usage: "list products", auth: authOptional, run: a.listProducts},
		"product":    {usage: "show one product: product <id>", auth: authOptional, run: a.getProduct},
		"create":     {usage: "create a product", auth: authRequired, run: a.createProduct},
		"update":     {usage: "update your product: update <id> [flags]", auth: authRequired, run: a.updateProduct},
		"delete":     {usage: "delete your product: delete <id>", auth: authRequired, run: a.deleteProduct},
		"favorites":  {usage: "list your favorites", auth: authRequired, run: a.listFavorites},
		"favorite":   {usage: "add a product to favorites: favorite <id>", auth: authRequired, run: a.addFavorite},
		"unfavorite": {usage: "remove a product from favorites: unfavorite <id>", auth: authRequired, run: a.removeFavorite},
		"shell":      {usage: "read commands from stdin until exit", auth: authNone, run: a.shell},
	}

	return a, nil
}

// Run parses the global flags and executes the command named by the first
// remaining argument.
func (a *App) Run(ctx context.Context, args []string) error {
	fs, jsonOutput := a.newGlobalFlagSet()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	a.jsonOut = *jsonOutput

	if fs.NArg() == 0 {
		a.printUsage(fs)
		return errNoCommand
	}

	return a.dispatch(ctx, fs.Arg(0), fs.Args()[1:])
}

func (a *App) newGlobalFlagSet() (*flag.FlagSet, *bool) {
	fs := a.newFlagSet("marketplace")
	jsonOutput := fs.Bool("json", false, "print results as JSON")
	fs.Usage = func() { a.printUsage(fs) }
	return fs, jsonOutput
}

func (a *App) dispatch(ctx context.Context, name string, args []string) error {
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, name)
	}

	if err := a.restoreSession(ctx, cmd.auth); err != nil {
		return err
	}

	a.logger.Debug().Str("command", name).Strs("args", args).Msg("running command")

	err := cmd.run(ctx, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (a *App) restoreSession(ctx context.Context, mode authMode) error {
	if mode == authNone {
		return nil
	}

	_, err := a.services.AuthService.Restore(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrNotLoggedIn):
		if mode == authRequired {
			return errLoginRequired
		}
		return nil
	default:
		return fmt.Errorf("restore session: %w", err)
	}
}

func (a *App) printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(a.out, "usage: marketplace [-json] <command> [flags] [args]")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "commands:")

	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(a.out, "  %-11s %s\n", name, a.commands[name].usage)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "global flags:")
	fs.PrintDefaults()
}
