package command

import (
	"context"
	"fmt"
	"time"

	"recipehub/cmd/cli/authentication"
	"recipehub/internal/microservices/http-api/dto"

	"github.com/urfave/cli/v3"
)

// auth.go handles register, login, logout and whoami.

func authCmd() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authentication commands",
		Commands: []*cli.Command{
			registerCmd(),
			loginCmd(),
			logoutCmd(),
			whoamiCmd(),
		},
	}
}

func registerCmd() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new RecipeHub account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "Username for the new account", Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Password for the new account", Required: true},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Email address for the new account", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			user, err := newClient(cmd).Register(ctx, &dto.RegisterRequest{
				Username: cmd.String("username"),
				Password: cmd.String("password"),
				Email:    cmd.String("email"),
			})
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			w := stdout(cmd)
			fmt.Fprintln(w, "✓ Registration successful! Please login to continue.")
			fmt.Fprintf(w, "UserID: %s\n", user.ID)
			return nil
		},
	}
}

func loginCmd() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Login to your RecipeHub account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "Username for the account", Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Password for the account", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			username := cmd.String("username")
			token, err := newClient(cmd).Login(ctx, &dto.LoginRequest{
				Username: username,
				Password: cmd.String("password"),
			})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			expiresAt := time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
			if err := authentication.StoreTokens(&authentication.StoredCredentials{
				AccessToken: token.AccessToken,
				Username:    username,
				APIURL:      cmd.String("api"),
				ExpiresAt:   expiresAt.Unix(),
			}); err != nil {
				return fmt.Errorf("could not store session: %w", err)
			}

			w := stdout(cmd)
			fmt.Fprintf(w, "✓ Logged in as %s\n", username)
			fmt.Fprintf(w, "Session expires at %s\n", expiresAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

func logoutCmd() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Forget the stored session",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := authentication.DeleteTokens(); err != nil {
				return fmt.Errorf("could not clear session: %w", err)
			}
			fmt.Fprintln(stdout(cmd), "✓ Successfully logged out.")
			return nil
		},
	}
}

func whoamiCmd() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the logged in user",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			httpClient, err := authenticatedClient(cmd)
			if err != nil {
				return err
			}
			user, err := httpClient.Me(ctx)
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}

			w := stdout(cmd)
			fmt.Fprintf(w, "Username: %s\n", user.Username)
			fmt.Fprintf(w, "Email:    %s\n", user.Email)
			fmt.Fprintf(w, "UserID:   %s\n", user.ID)
			return nil
		},
	}
}
