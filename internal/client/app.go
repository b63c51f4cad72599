package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/service"
	"github.com/MKhiriev/chiro-hub/models"
)

const usage = `usage: chiro-client [flags] <command> [args]

commands:
  register -login <login> -email <email> -password <password>
  login -login <login>
  logout
  whoami
  status
  leads add [-data <json> | -file <path|->]
  leads list [-chiropractor <tag>] [-since <RFC 3339>]
  leads local [-chiropractor <tag>]
  leads browse [-chiropractor <tag>]
`

type App struct {
	services *service.ClientServices
	browser  LeadBrowser

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, browser LeadBrowser, logger *logger.Logger) *App {
	return &App{
		services: services,
		browser:  browser,
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		logger:   logger,
	}
}

// Run executes one command. The returned error has already been reported
// to the user.
func (a *App) Run(ctx context.Context, args []string) error {
	ctx = a.logger.WithContext(ctx)

	err := a.dispatch(ctx, args)
	if err != nil {
		a.logger.Error().Err(err).Strs("args", args).Msg("command failed")
		fmt.Fprintln(a.errOut, "error:", humanizeError(err))
	}
	return err
}

func (a *App) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return fmt.Errorf("%w: no command given", ErrMissingArgument)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoAmI(ctx)
	case "status":
		return a.status(ctx)
	case "leads":
		return a.leads(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	}

	fmt.Fprint(a.errOut, usage)
	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.newFlagSet("register")
	login := fs.String("login", "", "account login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.services.AuthService.Register(ctx, models.RegistrationRequest{
		Login:    *login,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	login := fs.String("login", "", "account login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*login) == "" {
		return fmt.Errorf("%w: -login", ErrMissingArgument)
	}

	result, err := a.services.AuthService.Login(ctx, models.LoginRequest{Login: *login})
	if err != nil {
		return err
	}
	return a.printJSON(result)
}

func (a *App) logout(ctx context.Context) error {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signed out")
	return nil
}

func (a *App) whoAmI(ctx context.Context) error {
	identity, err := a.services.AuthService.WhoAmI(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(identity)
}

func (a *App) status(ctx context.Context) error {
	status, err := a.services.StatusService.Status(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(status)
}

func (a *App) leads(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return fmt.Errorf("%w: leads sub-command", ErrMissingArgument)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "add":
		return a.addLead(ctx, rest)
	case "list":
		return a.listRemoteLeads(ctx, rest)
	case "local":
		return a.listLocalLeads(ctx, rest)
	case "browse":
		return a.browseLeads(ctx, rest)
	}

	fmt.Fprint(a.errOut, usage)
	return fmt.Errorf("%w: leads %q", ErrUnknownCommand, cmd)
}

func (a *App) addLead(ctx context.Context, args []string) error {
	fs := a.newFlagSet("leads add")
	data := fs.String("data", "", "lead JSON object")
	file := fs.String("file", "", "file holding the lead JSON object, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := a.readLead(*data, *file)
	if err != nil {
		return err
	}

	ack, err := a.services.LeadService.Add(ctx, raw)
	if err != nil {
		return err
	}
	return a.printJSON(ack)
}

func (a *App) listRemoteLeads(ctx context.Context, args []string) error {
	fs := a.newFlagSet("leads list")
	chiropractor := fs.String("chiropractor", "", "only leads of this clinic")
	since := fs.String("since", "", "only leads created after this RFC 3339 time")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := a.services.LeadService.ListRemote(ctx, models.LeadQuery{
		Chiropractor: *chiropractor,
		Since:        *since,
	})
	if err != nil {
		return err
	}
	return a.printJSON(list)
}

func (a *App) listLocalLeads(ctx context.Context, args []string) error {
	fs := a.newFlagSet("leads local")
	chiropractor := fs.String("chiropractor", "", "only leads of this clinic")
	if err := fs.Parse(args); err != nil {
		return err
	}

	leads, err := a.services.LeadService.ListLocal(ctx, *chiropractor)
	if err != nil {
		return err
	}
	return a.printJSON(models.LeadList{Leads: leads, Count: len(leads)})
}

func (a *App) browseLeads(ctx context.Context, args []string) error {
	fs := a.newFlagSet("leads browse")
	chiropractor := fs.String("chiropractor", "", "only leads of this clinic")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return a.browser.BrowseLeads(ctx, *chiropractor)
}

// readLead takes the lead from -data or -file; exactly one is required.
func (a *App) readLead(data, file string) (json.RawMessage, error) {
	switch {
	case data != "" && file != "":
		return nil, fmt.Errorf("%w: use either -data or -file", ErrMissingArgument)
	case data != "":
		return json.RawMessage(data), nil
	case file == "-":
		b, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return b, nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading lead file: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: -data or -file", ErrMissingArgument)
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
