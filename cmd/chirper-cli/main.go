// chirper-cli — консольный клиент chirper поверх pkg/client.
//
// Адрес API берётся из --url или CHIRPER_URL, файл токенов из --tokens или
// CHIRPER_TOKENS (по умолчанию <UserConfigDir>/chirper/tokens.json).
//
//	chirper-cli login alice@example.com secret
//	chirper-cli feed --limit 10
//	chirper-cli post "hello, chirper"
//	chirper-cli like <chirp-id>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/pkg/client"
)

const usage = `usage: chirper-cli [--url URL] [--tokens FILE] <command> [args]

commands:
  health
  register <username> <display-name> <email> <password>
  login <email> <password>
  logout
  me
  profile <id|username>
  feed [--limit N] [--offset N] [--profile ID]
  chirp <id>
  post <content>
  edit <id> <content>
  delete <id>
  like <id>
  unlike <id>
  stats <id>
  likers <id> [--limit N] [--offset N]
`

func main() {
	var (
		baseURL    string
		tokensPath string
		verbose    bool
	)

	flag.StringVar(&baseURL, "url", envOr("CHIRPER_URL", "http://localhost:3001/api"), "chirper API base url")
	flag.StringVar(&tokensPath, "tokens", envOr("CHIRPER_TOKENS", defaultTokensPath()), "path to tokens file")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c, err := client.New(ctx, baseURL, client.WithTokenStore(client.NewFileStore(tokensPath)))
	if err != nil {
		fail(err)
	}

	out, err := run(ctx, c, flag.Arg(0), flag.Args()[1:])
	if err != nil {
		fail(err)
	}

	if out != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	}
}

func run(ctx context.Context, c *client.Client, cmd string, args []string) (any, error) {
	switch cmd {
	case "health":
		return c.Health(ctx)

	case "register":
		if len(args) != 4 {
			return nil, errUsage
		}
		return c.Register(ctx, client.RegisterParams{
			Username:    args[0],
			DisplayName: args[1],
			Email:       args[2],
			Password:    args[3],
		})

	case "login":
		if len(args) != 2 {
			return nil, errUsage
		}
		return c.Login(ctx, args[0], args[1])

	case "logout":
		return nil, c.Logout(ctx)

	case "me":
		return c.MyProfile(ctx)

	case "profile":
		if len(args) != 1 {
			return nil, errUsage
		}
		if id, err := uuid.Parse(args[0]); err == nil {
			return c.Profile(ctx, id)
		}
		return c.ProfileByUsername(ctx, args[0])

	case "feed":
		fs := flag.NewFlagSet("feed", flag.ContinueOnError)
		limit := fs.Int("limit", 0, "page size")
		offset := fs.Int("offset", 0, "page offset")
		profile := fs.String("profile", "", "only chirps of this profile id")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}

		page := client.Page{Limit: *limit, Offset: *offset}
		if *profile == "" {
			return c.Feed(ctx, page)
		}

		id, err := uuid.Parse(*profile)
		if err != nil {
			return nil, fmt.Errorf("profile: %w", err)
		}
		return c.ChirpsByProfile(ctx, id, page)

	case "chirp", "delete", "like", "unlike", "stats":
		if len(args) != 1 {
			return nil, errUsage
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return nil, fmt.Errorf("chirp id: %w", err)
		}

		switch cmd {
		case "chirp":
			return c.Chirp(ctx, id)
		case "delete":
			return nil, c.DeleteChirp(ctx, id)
		case "like":
			return c.ToggleLike(ctx, id)
		case "unlike":
			return c.Unlike(ctx, id)
		default:
			return c.LikeStats(ctx, id)
		}

	case "likers":
		if len(args) < 1 {
			return nil, errUsage
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return nil, fmt.Errorf("chirp id: %w", err)
		}

		fs := flag.NewFlagSet("likers", flag.ContinueOnError)
		limit := fs.Int("limit", 0, "page size")
		offset := fs.Int("offset", 0, "page offset")
		if err := fs.Parse(args[1:]); err != nil {
			return nil, err
		}
		return c.ChirpLikers(ctx, id, client.Page{Limit: *limit, Offset: *offset})

	case "post":
		if len(args) == 0 {
			return nil, errUsage
		}
		return c.CreateChirp(ctx, strings.Join(args, " "))

	case "edit":
		if len(args) < 2 {
			return nil, errUsage
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return nil, fmt.Errorf("chirp id: %w", err)
		}
		return c.UpdateChirp(ctx, id, strings.Join(args[1:], " "))
	}

	return nil, fmt.Errorf("unknown command %q", cmd)
}

var errUsage = errors.New("wrong number of arguments (see --help)")

func fail(err error) {
	if apiErr, ok := client.AsAPIError(err); ok {
		fmt.Fprintf(os.Stderr, "error: %s (%d %s)\n", apiErr.Message, apiErr.Status, apiErr.Code)
		for _, d := range apiErr.Details {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", d.Path, d.Message)
		}
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func defaultTokensPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".chirper-tokens.json")
	}

	return filepath.Join(dir, "chirper", "tokens.json")
}
