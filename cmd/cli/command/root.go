package command

// root.go defines the root command for the recipehub CLI.
// Global flags and the shared client helpers live here.

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"recipehub/cmd/cli/authentication"
	"recipehub/cmd/cli/command/client"

	"github.com/urfave/cli/v3"
)

const defaultAPIURL = "http://localhost:8080"

// Root builds the command tree. main runs it with os.Args; tests run it with their own args.
func Root() *cli.Command {
	return &cli.Command{
		Name:  "recipehub",
		Usage: "RecipeHub command line client",
		Description: `recipehub talks to the RecipeHub API. Use it to:
- Register and log in
- Publish and edit your recipes
- Rate recipes from 1 to 3
- Keep a list of favorite recipes`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Value:   defaultAPIURL,
				Usage:   "API server URL",
				Sources: cli.EnvVars("RECIPEHUB_API"),
			},
		},
		Commands: []*cli.Command{
			authCmd(),
			recipeCmd(),
			ratingCmd(),
			favoriteCmd(),
		},
	}
}

func newClient(cmd *cli.Command) *client.HTTPClient {
	return client.NewHTTPClient(cmd.String("api"))
}

// authenticatedClient attaches the stored token and fails early without a usable session.
func authenticatedClient(cmd *cli.Command) (*client.HTTPClient, error) {
	creds, err := authentication.GetTokens()
	if errors.Is(err, authentication.ErrNotLoggedIn) {
		return nil, errors.New("not logged in: run 'recipehub auth login' first")
	}
	if err != nil {
		return nil, fmt.Errorf("read stored credentials: %w", err)
	}
	if creds.Expired(time.Now()) {
		return nil, errors.New("session expired: run 'recipehub auth login' again")
	}

	c := newClient(cmd)
	c.SetToken(creds.AccessToken)
	return c, nil
}

func stdout(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

// recipeIDArg parses the positional argument at index i as a recipe id
func recipeIDArg(cmd *cli.Command, i int) (int64, error) {
	raw := cmd.Args().Get(i)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid recipe ID: %q", raw)
	}
	return id, nil
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
