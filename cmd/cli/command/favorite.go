package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func favoriteCmd() *cli.Command {
	return &cli.Command{
		Name:  "favorite",
		Usage: "Manage your favorite recipes",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a recipe to your favorites",
				ArgsUsage: "<recipe-id>",
				Action:    addFavorite,
			},
			{
				Name:   "list",
				Usage:  "List your favorite recipes",
				Action: listFavorites,
			},
			{
				Name:      "remove",
				Usage:     "Remove a recipe from your favorites",
				ArgsUsage: "<recipe-id>",
				Action:    removeFavorite,
			},
		},
	}
}

func addFavorite(ctx context.Context, cmd *cli.Command) error {
	recipeID, err := recipeIDArg(cmd, 0)
	if err != nil {
		return err
	}
	httpClient, err := authenticatedClient(cmd)
	if err != nil {
		return err
	}

	if _, err := httpClient.AddFavorite(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	fmt.Fprintf(stdout(cmd), "✓ Added recipe %d to your favorites\n", recipeID)
	return nil
}

func listFavorites(ctx context.Context, cmd *cli.Command) error {
	httpClient, err := authenticatedClient(cmd)
	if err != nil {
		return err
	}

	favorites, err := httpClient.ListFavorites(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch favorites: %w", err)
	}

	w := stdout(cmd)
	if len(favorites) == 0 {
		fmt.Fprintln(w, "Your favorites list is empty")
		return nil
	}

	fmt.Fprintf(w, "Your favorites (%d recipes)\n", len(favorites))
	for i, f := range favorites {
		fmt.Fprintf(w, "%d. %s (ID: %d) by %s\n", i+1, f.Title, f.RecipeID, f.AuthorUsername)
		fmt.Fprintf(w, "   Category: %s  Time: %s  Serves: %s\n", orDash(f.Category), orDash(f.PrepTime), orDash(f.Serves))
	}
	return nil
}

func removeFavorite(ctx context.Context, cmd *cli.Command) error {
	recipeID, err := recipeIDArg(cmd, 0)
	if err != nil {
		return err
	}
	httpClient, err := authenticatedClient(cmd)
	if err != nil {
		return err
	}

	if err := httpClient.RemoveFavorite(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	fmt.Fprintf(stdout(cmd), "✓ Removed recipe %d from your favorites\n", recipeID)
	return nil
}
