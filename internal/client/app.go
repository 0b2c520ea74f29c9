package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-records/internal/adapter"
	"github.com/MKhiriev/go-user-records/internal/logger"
	"github.com/MKhiriev/go-user-records/models"
)

type command func(ctx context.Context, args []string) (any, error)

type App struct {
	users adapter.UserClient
	out   io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(users adapter.UserClient, out io.Writer, logger *logger.Logger) *App {
	a := &App{users: users, out: out, logger: logger}
	a.commands = map[string]command{
		"create":  a.create,
		"get":     a.get,
		"update":  a.update,
		"list":    a.list,
		"search":  a.search,
		"login":   a.login,
		"verify":  a.verify,
		"version": a.version,
	}
	return a
}

// Run executes args[0] with the remaining arguments as its flags and writes
// the result as indented JSON.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: want one of %s", ErrMissingCommand, a.commandNames())
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q: want one of %s", ErrUnknownCommand, args[0], a.commandNames())
	}

	a.logger.Debug().Str("command", args[0]).Msg("running client command")

	result, err := cmd(ctx, args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func (a *App) commandNames() string {
	return strings.Join(slices.Sorted(maps.Keys(a.commands)), ", ")
}

// profileFlags binds the editable attributes of a user to fs.
type profileFlags struct {
	name, email, password string
	phone, city, country  string
	urlTwitter, urlGitHub string
}

func (p *profileFlags) bind(fs *flag.FlagSet) {
	fs.StringVar(&p.name, "name", "", "display name")
	fs.StringVar(&p.email, "email", "", "email address")
	fs.StringVar(&p.password, "password", "", "plaintext password")
	fs.StringVar(&p.phone, "phone", "", "phone number")
	fs.StringVar(&p.city, "city", "", "city")
	fs.StringVar(&p.country, "country", "", "country")
	fs.StringVar(&p.urlTwitter, "twitter", "", "Twitter profile URL")
	fs.StringVar(&p.urlGitHub, "github", "", "GitHub profile URL")
}

// apply overwrites the attributes of user that were set on the command line.
func (p *profileFlags) apply(user *models.User) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&user.Name, p.name)
	set(&user.Email, p.email)
	set(&user.Password, p.password)
	set(&user.Phone, p.phone)
	set(&user.City, p.city)
	set(&user.Country, p.country)
	set(&user.URLTwitter, p.urlTwitter)
	set(&user.URLGitHub, p.urlGitHub)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) create(ctx context.Context, args []string) (any, error) {
	var profile profileFlags
	fs := newFlagSet("create")
	profile.bind(fs)
	role := fs.String("role", "", "programmer or company")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	user := models.User{Role: models.Role(*role)}
	profile.apply(&user)
	return a.users.Create(ctx, user)
}

func (a *App) get(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("get")
	userID := fs.Int64("id", 0, "user id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *userID <= 0 {
		return nil, fmt.Errorf("%w: -id", ErrMissingArgument)
	}

	return a.users.Get(ctx, *userID)
}

// update loads the current record and overwrites only the attributes given
// on the command line. The password is kept unless -password is set.
func (a *App) update(ctx context.Context, args []string) (any, error) {
	var profile profileFlags
	fs := newFlagSet("update")
	profile.bind(fs)
	userID := fs.Int64("id", 0, "user id")
	token := fs.String("token", "", "bearer token returned by login")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *userID <= 0 {
		return nil, fmt.Errorf("%w: -id", ErrMissingArgument)
	}
	if *token != "" {
		a.users.SetToken(*token)
	}
	if a.users.Token() == "" {
		return nil, fmt.Errorf("%w: -token", ErrMissingArgument)
	}

	user, err := a.users.Get(ctx, *userID)
	if err != nil {
		return nil, err
	}
	profile.apply(&user)

	return a.users.Update(ctx, user)
}

func (a *App) list(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("list")
	page := fs.Int("page", 0, "1-based page number")
	limit := fs.Int("limit", 0, "page size")
	role := fs.String("role", "", "only users with this role")
	verified := fs.String("verified", "", "true or false")
	query := fs.String("q", "", "free-text search")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	req := models.ListRequest{Query: *query, Role: models.Role(*role), Page: *page, Limit: *limit}
	if *verified != "" {
		v, err := strconv.ParseBool(*verified)
		if err != nil {
			return nil, fmt.Errorf("-verified %q: %w", *verified, err)
		}
		req.Verified = &v
	}

	return a.users.List(ctx, req)
}

// search runs a free-text query built from the positional arguments.
func (a *App) search(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("search")
	page := fs.Int("page", 0, "1-based page number")
	limit := fs.Int("limit", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	query := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search terms", ErrMissingArgument)
	}

	return a.users.List(ctx, models.ListRequest{Query: query, Page: *page, Limit: *limit})
}

type loginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("login")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "plaintext password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *email == "" || *password == "" {
		return nil, fmt.Errorf("%w: -email and -password", ErrMissingArgument)
	}

	user, err := a.users.Login(ctx, *email, *password)
	if err != nil {
		return nil, err
	}

	return loginResult{Token: a.users.Token(), User: user}, nil
}

func (a *App) verify(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("verify")
	token := fs.String("token", "", "verification token")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *token == "" {
		return nil, fmt.Errorf("%w: -token", ErrMissingArgument)
	}

	return a.users.Verify(ctx, *token)
}

func (a *App) version(ctx context.Context, _ []string) (any, error) {
	return a.users.Version(ctx)
}
