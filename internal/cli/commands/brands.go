package commands

import (
	"Catalog/internal/cli/api"
	"Catalog/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type brandView struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

type brandsCmd struct{}

func (brandsCmd) Name() string        { return "brands" }
func (brandsCmd) Description() string { return "List brands with their categories" }
func (brandsCmd) Usage() string       { return "brands" }

func (brandsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.DoJSON(ctx, http.MethodGet, endpoint(cfg, "/brands"), nil, "")
	if err != nil {
		return err
	}
	var data struct {
		Brands []brandView `json:"brands"`
	}
	if _, err := expect(resp, body, http.StatusOK, &data); err != nil {
		return err
	}
	if len(data.Brands) == 0 {
		fmt.Fprintln(Out, "No brands")
		return nil
	}
	for _, b := range data.Brands {
		fmt.Fprintf(Out, "- %s  %s  [%s]\n", b.ID, b.Name, strings.Join(b.Categories, ", "))
	}
	fmt.Fprintf(Out, "Total: %d\n", len(data.Brands))
	return nil
}

type brandAddCmd struct{}

func (brandAddCmd) Name() string        { return "brand-add" }
func (brandAddCmd) Description() string { return "Create a brand" }
func (brandAddCmd) Usage() string       { return "brand-add <name> [category...]" }

func (brandAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	payload := map[string]any{"name": args[0], "categories": append([]string{}, args[1:]...)}
	resp, body, err := callAuthorized(ctx, cfg, http.MethodPost, "/brands", payload)
	if err != nil {
		return err
	}
	var data struct {
		Brand brandView `json:"brand"`
	}
	if _, err := expect(resp, body, http.StatusCreated, &data); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Brand created: %s (%s)\n", data.Brand.Name, data.Brand.ID)
	return nil
}

type brandCategoriesCmd struct{}

func (brandCategoriesCmd) Name() string        { return "brand-categories" }
func (brandCategoriesCmd) Description() string { return "Replace the category list of a brand" }
func (brandCategoriesCmd) Usage() string       { return "brand-categories <brandId> [category...]" }

func (brandCategoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	payload := map[string]any{"categories": append([]string{}, args[1:]...)}
	resp, body, err := callAuthorized(ctx, cfg, http.MethodPatch, "/brands/"+args[0]+"/categories", payload)
	if err != nil {
		return err
	}
	var data struct {
		Brand brandView `json:"brand"`
	}
	if _, err := expect(resp, body, http.StatusOK, &data); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Categories of %s: [%s]\n", data.Brand.Name, strings.Join(data.Brand.Categories, ", "))
	return nil
}

func init() {
	RegisterCmd(brandsCmd{})
	RegisterCmd(brandAddCmd{})
	RegisterCmd(brandCategoriesCmd{})
}

func (brandsCmd) Section() string          { return "Catalog" }
func (brandAddCmd) Section() string        { return "Catalog" }
func (brandCategoriesCmd) Section() string { return "Catalog" }
