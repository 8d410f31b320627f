package command

import (
	"context"
	"fmt"
	"strings"

	"recipehub/internal/microservices/http-api/dto"
	"recipehub/internal/microservices/http-api/models"

	"github.com/urfave/cli/v3"
)

func recipeCmd() *cli.Command {
	return &cli.Command{
		Name:  "recipe",
		Usage: "Browse and manage recipes",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all recipes",
				Action: listRecipes,
			},
			{
				Name:      "get",
				Usage:     "Show one recipe",
				ArgsUsage: "<recipe-id>",
				Action:    getRecipe,
			},
			{
				Name:   "create",
				Usage:  "Publish a recipe as the logged in user",
				Flags:  recipeFlags(),
				Action: createRecipe,
			},
			{
				Name:      "update",
				Usage:     "Replace one of your recipes",
				ArgsUsage: "<recipe-id>",
				Flags:     recipeFlags(),
				Action:    updateRecipe,
			},
			{
				Name:      "delete",
				Usage:     "Delete one of your recipes",
				ArgsUsage: "<recipe-id>",
				Action:    deleteRecipe,
			},
		},
	}
}

func recipeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Recipe title", Required: true},
		&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Short description"},
		&cli.StringSliceFlag{Name: "ingredient", Aliases: []string{"i"}, Usage: "Ingredient (repeatable)"},
		&cli.StringSliceFlag{Name: "instruction", Aliases: []string{"s"}, Usage: "Instruction step (repeatable)"},
		&cli.StringFlag{Name: "category", Usage: "Category, e.g. soup"},
		&cli.StringFlag{Name: "image", Usage: "Image URL"},
		&cli.StringFlag{Name: "time", Usage: "Preparation time, e.g. 30 min"},
		&cli.StringFlag{Name: "serves", Usage: "Number of servings"},
	}
}

func recipeRequestFromFlags(cmd *cli.Command) *dto.RecipeRequest {
	optional := func(name string) *string {
		if !cmd.IsSet(name) {
			return nil
		}
		v := cmd.String(name)
		return &v
	}

	return &dto.RecipeRequest{
		Title:        cmd.String("title"),
		Description:  cmd.String("description"),
		Ingredients:  cmd.StringSlice("ingredient"),
		Instructions: cmd.StringSlice("instruction"),
		Category:     optional("category"),
		ImageSource:  optional("image"),
		Time:         optional("time"),
		Serves:       optional("serves"),
	}
}

func listRecipes(ctx context.Context, cmd *cli.Command) error {
	recipes, err := newClient(cmd).ListRecipes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	w := stdout(cmd)
	if len(recipes) == 0 {
		fmt.Fprintln(w, "No recipes yet.")
		return nil
	}
	fmt.Fprintf(w, "%d recipes\n", len(recipes))
	for _, r := range recipes {
		fmt.Fprintf(w, "%d. %s [%s]\n", r.ID, r.Title, orDash(r.Category))
	}
	return nil
}

func getRecipe(ctx context.Context, cmd *cli.Command) error {
	id, err := recipeIDArg(cmd, 0)
	if err != nil {
		return err
	}
	recipe, err := newClient(cmd).GetRecipe(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get recipe: %w", err)
	}
	printRecipe(cmd, recipe)
	return nil
}

func createRecipe(ctx context.Context, cmd *cli.Command) error {
	httpClient, err := authenticatedClient(cmd)
	if err != nil {
		return err
	}
	recipe, err := httpClient.CreateRecipe(ctx, recipeRequestFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	fmt.Fprintf(stdout(cmd), "✓ Recipe created (ID: %d)\n", recipe.ID)
	return nil
}

func updateRecipe(ctx context.Context, cmd *cli.Command) error {
	id, err := recipeIDArg(cmd, 0)
	if err != nil {
		return err
	}
	httpClient, err := authenticatedClient(cmd)
	if err != nil {
		return err
	}
	recipe, err := httpClient.UpdateRecipe(ctx, id, recipeRequestFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	fmt.Fprintf(stdout(cmd), "✓ Recipe %d updated: %s\n", recipe.ID, recipe.Title)
	return nil
}

func deleteRecipe(ctx context.Context, cmd *cli.Command) error {
	id, err := recipeIDArg(cmd, 0)
	if err != nil {
		return err
	}
	httpClient, err := authenticatedClient(cmd)
	if err != nil {
		return err
	}
	if err := httpClient.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	fmt.Fprintf(stdout(cmd), "✓ Recipe %d deleted\n", id)
	return nil
}

func printRecipe(cmd *cli.Command, r *models.Recipe) {
	w := stdout(cmd)
	fmt.Fprintf(w, "%s (ID: %d)\n", r.Title, r.ID)
	if r.Description != "" {
		fmt.Fprintf(w, "%s\n", r.Description)
	}
	fmt.Fprintf(w, "Category: %s  Time: %s  Serves: %s\n", orDash(r.Category), orDash(r.PrepTime), orDash(r.Serves))
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintln(w, "Ingredients:")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", ing)
	}
	fmt.Fprintln(w, "Instructions:")
	for i, step := range r.Instructions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}

