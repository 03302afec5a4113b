package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/will/chargify/internal/types"
)

// ListProducts returns the product catalog.
func ListProducts(ctx context.Context, rc *resty.Client) (_ []types.Product, err error) {
	const op = "list products"
	ctx, end := startSpan(ctx, op, http.MethodGet, "/products.json")
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodGet, "/products.json", nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[types.Product](op, resp, types.KeyProduct)
}

// GetProduct fetches a product by id.
func GetProduct(ctx context.Context, rc *resty.Client, productID int) (_ *types.Product, err error) {
	const op = "get product"
	if err := types.ValidateID(productID, "product id"); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/products/%d.json", productID)
	ctx, end := startSpan(ctx, op, http.MethodGet, path)
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapOne[types.Product](op, resp, types.KeyProduct)
}

// GetProductByHandle fetches a product by its handle.
func GetProductByHandle(ctx context.Context, rc *resty.Client, handle string) (_ *types.Product, err error) {
	const op = "get product by handle"
	if err := types.ValidatePresent(handle, "handle"); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/products/handle/%s.json", url.PathEscape(handle))
	ctx, end := startSpan(ctx, op, http.MethodGet, path)
	defer func() { end(err) }()

	resp, err := send(ctx, rc, op, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapOne[types.Product](op, resp, types.KeyProduct)
}
