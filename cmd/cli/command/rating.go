package command

import (
	"context"
	"fmt"
	"strconv"

	"recipehub/internal/microservices/http-api/models"

	"github.com/urfave/cli/v3"
)

func ratingCmd() *cli.Command {
	return &cli.Command{
		Name:  "rating",
		Usage: "Rating management commands",
		Commands: []*cli.Command{
			{
				Name:      "rate",
				Usage:     fmt.Sprintf("Rate a recipe (%d-%d)", models.MinRatingValue, models.MaxRatingValue),
				ArgsUsage: "<recipe-id> <value>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return writeRating(ctx, cmd, false)
				},
			},
			{
				Name:      "update",
				Usage:     "Change your rating for a recipe",
				ArgsUsage: "<recipe-id> <value>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return writeRating(ctx, cmd, true)
				},
			},
			{
				Name:      "get",
				Usage:     "Get your rating for a recipe",
				ArgsUsage: "<recipe-id>",
				Action:    getRating,
			},
			{
				Name:      "delete",
				Usage:     "Delete your rating for a recipe",
				ArgsUsage: "<recipe-id>",
				Action:    deleteRating,
			},
			{
				Name:      "average",
				Usage:     "Get the average rating of a recipe",
				ArgsUsage: "<recipe-id>",
				Action:    averageRating,
			},
		},
	}
}

func writeRating(ctx context.Context, cmd *cli.Command, update bool) error {
	recipeID, err := recipeIDArg(cmd, 0)
	if err != nil {
		return err
	}
	value, err := strconv.Atoi(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid rating: %q", cmd.Args().Get(1))
	}
	if !models.ValidRatingValue(value) {
		return fmt.Errorf("rating must be between %d and %d", models.MinRatingValue, models.MaxRatingValue)
	}

	httpClient, err := authenticatedClient(cmd)
	if err != nil {
		return err
	}

	var rating *models.Rating
	if update {
		rating, err = httpClient.UpdateRating(ctx, recipeID, value)
	} else {
		rating, err = httpClient.RateRecipe(ctx, recipeID, value)
	}
	if err != nil {
		return fmt.Errorf("failed to rate recipe: %w", err)
	}

	w := stdout(cmd)
	fmt.Fprintln(w, "✓ Rating saved!")
	fmt.Fprintf(w, "Recipe ID: %d\n", recipeID)
	fmt.Fprintf(w, "Your Rating: %d/%d\n", rating.Value, models.MaxRatingValue)
	return nil
}

func getRating(ctx context.Context, cmd *cli.Command) error {
	recipeID, err := recipeIDArg(cmd, 0)
	if err != nil {
		return err
	}
	httpClient, err := authenticatedClient(cmd)
	if err != nil {
		return err
	}

	rating, err := httpClient.GetUserRating(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("failed to get rating: %w", err)
	}

	w := stdout(cmd)
	fmt.Fprintf(w, "Your rating for recipe %d: %d/%d\n", recipeID, rating.Value, models.MaxRatingValue)
	fmt.Fprintf(w, "Updated at: %s\n", rating.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func deleteRating(ctx context.Context, cmd *cli.Command) error {
	recipeID, err := recipeIDArg(cmd, 0)
	if err != nil {
		return err
	}
	httpClient, err := authenticatedClient(cmd)
	if err != nil {
		return err
	}

	if err := httpClient.DeleteRating(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}

	fmt.Fprintf(stdout(cmd), "✓ Rating deleted for recipe %d\n", recipeID)
	return nil
}

func averageRating(ctx context.Context, cmd *cli.Command) error {
	recipeID, err := recipeIDArg(cmd, 0)
	if err != nil {
		return err
	}

	// public endpoint, no session needed
	avg, err := newClient(cmd).GetAverageRating(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("failed to get average rating: %w", err)
	}

	w := stdout(cmd)
	fmt.Fprintf(w, "Average rating for recipe %d: %.1f/%d\n", recipeID, avg.AverageRating, models.MaxRatingValue)
	fmt.Fprintf(w, "Total ratings: %d\n", avg.TotalRatings)
	return nil
}
