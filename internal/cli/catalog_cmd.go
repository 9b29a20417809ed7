package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/courtside/internal/cli/formatter"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/spf13/cobra"
)

func newRecipesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipes",
		Aliases: []string{"recipe"},
		Short:   "Browse and edit the recipe book",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := app.Catalog.Recipes(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecipeList(recipes))
			return nil
		},
	}
	cmd.AddCommand(
		newRecipeShowCmd(app),
		newRecipeShopCmd(app),
		newRecipeAddCmd(app),
		newRecipeRemoveCmd(app),
	)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func newRecipeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show ingredients and instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := app.Catalog.Recipe(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecipe(r))
			return nil
		},
	}
}

func newRecipeShopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shop ID",
		Short: "Put a recipe's ingredients on the shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := app.Catalog.Recipe(ctx, id)
			if err != nil {
				return err
			}
			items, err := app.Profile.AddShoppingItems(ctx, r.Ingredients...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShoppingList(items))
			return nil
		},
	}
}

func newRecipeAddCmd(app *App) *cobra.Command {
	var r domain.Recipe

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe, or replace one with --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.SaveRecipe(cmd.Context(), &r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved recipe %d: %s\n", r.ID, r.Title)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64Var(&r.ID, "id", 0, "Recipe ID to replace (default next free)")
	f.StringVar(&r.Title, "title", "", "Title")
	f.StringVar(&r.Time, "time", "", "Preparation time, e.g. \"20 min\"")
	f.StringSliceVar(&r.Tags, "tag", nil, "Tag (repeatable)")
	f.StringArrayVar(&r.Ingredients, "ingredient", nil, "Ingredient (repeatable)")
	f.StringVar(&r.Instructions, "instructions", "", "Preparation steps")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newRecipeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a recipe",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.DeleteRecipe(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %d.\n", id)
			return nil
		},
	}
}

func newCircuitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "circuit",
		Short: "Show the home strength circuit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises, err := app.Catalog.Exercises(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCircuit(exercises))
			return nil
		},
	}

	var e domain.Exercise
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a station, or replace one with --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.SaveExercise(cmd.Context(), &e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved exercise %d: %s\n", e.ID, e.Title)
			return nil
		},
	}
	add.Flags().Int64Var(&e.ID, "id", 0, "Exercise ID to replace (default next free)")
	add.Flags().StringVar(&e.Title, "title", "", "Title")
	add.Flags().StringVar(&e.Reps, "reps", "", "Reps or duration, e.g. \"3x12\"")
	add.Flags().StringVar(&e.Desc, "desc", "", "How to do it")
	_ = add.MarkFlagRequired("title")

	rm := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a station",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.DeleteExercise(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted exercise %d.\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, rm)
	return cmd
}
