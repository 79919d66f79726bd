package product

import (
	"errors"
	"strings"
)

var ErrInvalidCategory = errors.New("category requires id and name")

type Category struct {
	id           string
	name         string
	description  string
	image        string
	productCount int
}

func CategoryFromRecord(r CategoryRecord) (Category, error) {
	if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Name) == "" {
		return Category{}, ErrInvalidCategory
	}
	return Category{
		id:           r.ID,
		name:         r.Name,
		description:  r.Description,
		image:        r.Image,
		productCount: r.ProductCount,
	}, nil
}

func (c Category) ID() string          { return c.id }
func (c Category) Name() string        { return c.name }
func (c Category) Description() string { return c.description }
func (c Category) Image() string       { return c.image }
func (c Category) ProductCount() int   { return c.productCount }

func (c Category) WithProductCount(n int) Category {
	c.productCount = n
	return c
}
