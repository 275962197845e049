package commands

import (
	"Catalog/internal/config"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type productView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Brand    struct {
		Name string `json:"name"`
	} `json:"brand"`
}

// productFilters — допустимые ключи фильтра в виде key=value.
var productFilters = map[string]bool{"brand": true, "category": true, "minPrice": true, "maxPrice": true, "sort": true}

func parseFilters(args []string) (url.Values, error) {
	q := url.Values{}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || !productFilters[k] || v == "" {
			return nil, ErrUsage
		}
		q.Set(k, v)
	}
	return q, nil
}

func printProducts(products []productView) {
	if len(products) == 0 {
		fmt.Fprintln(Out, "No products")
		return
	}
	for _, p := range products {
		fmt.Fprintf(Out, "- %s  %s  %.2f  %s/%s\n", p.ID, p.Name, p.Price, p.Brand.Name, p.Category)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(products))
}

type productsCmd struct{}

func (productsCmd) Name() string        { return "products" }
func (productsCmd) Description() string { return "List visible products" }
func (productsCmd) Usage() string {
	return "products [brand=ID] [category=C] [minPrice=N] [maxPrice=N] [sort=F]"
}

// Run показывает каталог; если пользователь вошёл, сервер скрывает товары заблокировавших его.
func (productsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	q, err := parseFilters(args)
	if err != nil {
		return err
	}
	path := "/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	resp, body, err := callOptionalAuth(ctx, cfg, http.MethodGet, path)
	if err != nil {
		return err
	}
	var data struct {
		Products []productView `json:"products"`
	}
	if _, err := expect(resp, body, http.StatusOK, &data); err != nil {
		return err
	}
	printProducts(data.Products)
	return nil
}

type myProductsCmd struct{}

func (myProductsCmd) Name() string        { return "my-products" }
func (myProductsCmd) Description() string { return "List products you added" }
func (myProductsCmd) Usage() string       { return "my-products [brand=ID] [category=C] [sort=F]" }

func (myProductsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	q, err := parseFilters(args)
	if err != nil {
		return err
	}
	path := "/my-products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	resp, body, err := callAuthorized(ctx, cfg, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	var data struct {
		Products []productView `json:"products"`
	}
	if _, err := expect(resp, body, http.StatusOK, &data); err != nil {
		return err
	}
	printProducts(data.Products)
	return nil
}

type productAddCmd struct{}

func (productAddCmd) Name() string        { return "product-add" }
func (productAddCmd) Description() string { return "Add a product under a brand" }
func (productAddCmd) Usage() string {
	return "product-add <brandId> <category> <price> <name> [description]"
}

func (productAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 4 {
		return ErrUsage
	}
	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return ErrUsage
	}
	description := args[3]
	if len(args) > 4 {
		description = strings.Join(args[4:], " ")
	}
	payload := map[string]any{
		"brand":       args[0],
		"category":    args[1],
		"price":       price,
		"name":        args[3],
		"description": description,
	}
	resp, body, err := callAuthorized(ctx, cfg, http.MethodPost, "/products", payload)
	if err != nil {
		return err
	}
	var data struct {
		Product productView `json:"product"`
	}
	if _, err := expect(resp, body, http.StatusCreated, &data); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Product created: %s (%s)\n", data.Product.Name, data.Product.ID)
	return nil
}

type productDeleteCmd struct{}

func (productDeleteCmd) Name() string        { return "product-rm" }
func (productDeleteCmd) Description() string { return "Delete one of your products" }
func (productDeleteCmd) Usage() string       { return "product-rm <productId>" }

func (productDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := callAuthorized(ctx, cfg, http.MethodDelete, "/products/"+args[0], nil)
	if err != nil {
		return err
	}
	if _, err := expect(resp, body, http.StatusNoContent, nil); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Product deleted")
	return nil
}

func init() {
	RegisterCmd(productsCmd{})
	RegisterCmd(myProductsCmd{})
	RegisterCmd(productAddCmd{})
	RegisterCmd(productDeleteCmd{})
}

func (productsCmd) Section() string      { return "Catalog" }
func (myProductsCmd) Section() string    { return "Catalog" }
func (productAddCmd) Section() string    { return "Catalog" }
func (productDeleteCmd) Section() string { return "Catalog" }
