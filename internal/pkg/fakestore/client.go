package fakestore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"fakestoredw/internal/domain/dto"
	"fakestoredw/internal/pkg/constants"
)

const (
	usersPath    = "/users"
	productsPath = "/products"
	cartsPath    = "/carts"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) FetchUsers(ctx context.Context) ([]dto.RawUser, error) {
	var users []dto.RawUser
	if err := c.get(ctx, usersPath, &users); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return users, nil
}

func (c *Client) FetchProducts(ctx context.Context) ([]dto.RawProduct, error) {
	var products []dto.RawProduct
	if err := c.get(ctx, productsPath, &products); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

func (c *Client) FetchCarts(ctx context.Context) ([]dto.RawCart, error) {
	var carts []dto.RawCart
	if err := c.get(ctx, cartsPath, &carts); err != nil {
		return nil, fmt.Errorf("fetch carts: %w", err)
	}
	return carts, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w",
			url, constants.NewCodedError(constants.CodeNetwork, err.Error()))
	}
	defer func() {
		err = resp.Body.Close()
	}()

	// Проверяем статус ответа, он должен быть 200 OK
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("get %s: %w", url, constants.NewCodedError(
			constants.CodeNetwork,
			fmt.Sprintf("status code error: %d %s", resp.StatusCode, resp.Status),
		))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w",
			url, constants.NewCodedError(constants.CodeNetwork, err.Error()))
	}

	if err := sonic.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", url, err)
	}

	return nil
}
