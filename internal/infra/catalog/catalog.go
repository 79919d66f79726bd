package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"rent-elegance/internal/domain/product"
	"rent-elegance/internal/pkg/config"
	"rent-elegance/internal/usecase/shared"
)

//go:embed seed/*.json
var seed embed.FS

// Catalog is an in-memory product catalog loaded once at start.
type Catalog struct {
	products   []product.Product
	categories []product.Category
	byID       map[string]int
	categoryID map[string]int
}

// Load reads the configured files, falling back to the embedded seed.
func Load(cfg config.CatalogConfig, logger *slog.Logger) (*Catalog, error) {
	rawProducts, err := readSource(cfg.ProductsPath, "seed/products.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	rawCategories, err := readSource(cfg.CategoriesPath, "seed/categories.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	return New(rawProducts, rawCategories, logger)
}

// New parses the catalog. Records failing validation are logged and skipped;
// the first record wins when ids repeat.
func New(rawProducts, rawCategories []byte, logger *slog.Logger) (*Catalog, error) {
	var productItems []json.RawMessage
	if err := json.Unmarshal(rawProducts, &productItems); err != nil {
		return nil, fmt.Errorf("products must be a JSON array: %w", err)
	}
	var categoryItems []json.RawMessage
	if err := json.Unmarshal(rawCategories, &categoryItems); err != nil {
		return nil, fmt.Errorf("categories must be a JSON array: %w", err)
	}

	c := &Catalog{
		byID:       make(map[string]int, len(productItems)),
		categoryID: make(map[string]int, len(categoryItems)),
	}

	counts := make(map[string]int)
	for i, item := range productItems {
		var rec product.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			logger.Warn("skipping malformed product record", "index", i, "error", err)
			continue
		}
		p, err := product.FromRecord(rec)
		if err != nil {
			logger.Warn("skipping invalid product record", "index", i, "name", rec.Name, "error", err)
			continue
		}
		if _, dup := c.byID[p.ID()]; dup {
			logger.Warn("skipping duplicate product id", "index", i, "id", p.ID())
			continue
		}
		c.byID[p.ID()] = len(c.products)
		c.products = append(c.products, p)
		counts[p.Category()]++
	}

	for i, item := range categoryItems {
		var rec product.CategoryRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			logger.Warn("skipping malformed category record", "index", i, "error", err)
			continue
		}
		cat, err := product.CategoryFromRecord(rec)
		if err != nil {
			logger.Warn("skipping invalid category record", "index", i, "error", err)
			continue
		}
		if _, dup := c.categoryID[cat.ID()]; dup {
			continue
		}
		c.categoryID[cat.ID()] = len(c.categories)
		c.categories = append(c.categories, cat.WithProductCount(counts[cat.ID()]))
	}

	logger.Info("catalog loaded", "products", len(c.products), "categories", len(c.categories))
	return c, nil
}

func (c *Catalog) ListProducts(_ context.Context) ([]product.Product, error) {
	out := make([]product.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *Catalog) ListCategories(_ context.Context) ([]product.Category, error) {
	out := make([]product.Category, len(c.categories))
	copy(out, c.categories)
	return out, nil
}

func (c *Catalog) GetProductByID(_ context.Context, id string) (product.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return product.Product{}, shared.ErrProductNotFound
	}
	return c.products[i], nil
}

func (c *Catalog) GetCategoryByID(_ context.Context, id string) (product.Category, error) {
	i, ok := c.categoryID[id]
	if !ok {
		return product.Category{}, shared.ErrCategoryNotFound
	}
	return c.categories[i], nil
}

func readSource(path, seedName string) ([]byte, error) {
	if path == "" {
		return seed.ReadFile(seedName)
	}
	return os.ReadFile(path)
}
