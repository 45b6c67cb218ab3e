package shopapi

import (
	"context"
	"encoding/json"
	"fmt"

	catalogModel "storefront-backend/internal/domains/catalog/model"
)

// Catalog reads are session-independent.

func (c *Client) ListProducts(ctx context.Context, filter catalogModel.Filter) (*catalogModel.ProductList, error) {
	path := pathWithQuery("/products/", filter.QueryValues())

	// The API serves either a paginated envelope or a bare array depending
	// on backend configuration; accept both.
	var raw json.RawMessage
	if err := c.get(ctx, path, "", &raw); err != nil {
		return nil, err
	}

	var list catalogModel.ProductList
	if err := json.Unmarshal(raw, &list); err == nil && list.Results != nil {
		return &list, nil
	}

	var products []catalogModel.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product listing: %w", err)
	}
	return &catalogModel.ProductList{Count: len(products), Results: products}, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (*catalogModel.Product, error) {
	var product catalogModel.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d/", id), "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]catalogModel.Category, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/categories/", "", &raw); err != nil {
		return nil, err
	}

	var categories []catalogModel.Category
	if err := json.Unmarshal(raw, &categories); err == nil {
		return categories, nil
	}

	var envelope struct {
		Results []catalogModel.Category `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return envelope.Results, nil
}
