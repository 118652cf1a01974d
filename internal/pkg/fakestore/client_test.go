package fakestore_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakestoredw/internal/pkg/constants"
	"fakestoredw/internal/pkg/fakestore"
)

const usersBody = `[
	{
		"id": 1,
		"email": "john@gmail.com",
		"username": "johnd",
		"name": {"firstname": "john", "lastname": "doe"},
		"address": {
			"city": "kilcoole",
			"geolocation": {"lat": "-37.3159", "long": "81.1496"}
		}
	},
	{
		"id": 2,
		"username": "mor_2314",
		"name": {"firstname": "david"},
		"address": {"geolocation": {}}
	}
]`

func TestFetchUsersDecodesNestedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		_, _ = w.Write([]byte(usersBody))
	}))
	defer server.Close()

	client := fakestore.NewClient(server.URL)
	users, err := client.FetchUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, int64(1), users[0].ID)
	require.NotNil(t, users[0].Name.Firstname)
	assert.Equal(t, "john", *users[0].Name.Firstname)
	require.NotNil(t, users[0].Address.Geolocation.Lat)
	assert.Equal(t, "-37.3159", *users[0].Address.Geolocation.Lat)

	// absent fields stay nil
	assert.Nil(t, users[1].Email)
	assert.Nil(t, users[1].Name.Lastname)
	assert.Nil(t, users[1].Address.City)
	assert.Nil(t, users[1].Address.Geolocation.Long)
}

func TestFetchProductsKeepsLooseNumericFields(t *testing.T) {
	body := `[
		{"id": 1, "title": "Backpack", "category": "men's clothing",
		 "price": 109.95, "rating": {"rate": 3.9, "count": 120}}
	]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := fakestore.NewClient(server.URL)
	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, 109.95, products[0].Price)
	assert.Equal(t, 3.9, products[0].Rating.Rate)
	assert.Equal(t, float64(120), products[0].Rating.Count)
}

func TestFetchCartsDecodesProductLines(t *testing.T) {
	body := `[
		{"id": 1, "userId": 1, "date": "2020-03-02T00:00:00.000Z",
		 "products": [{"productId": 1, "quantity": 4}, {"productId": 2, "quantity": 1}]}
	]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/carts", r.URL.Path)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := fakestore.NewClient(server.URL)
	carts, err := client.FetchCarts(context.Background())
	require.NoError(t, err)
	require.Len(t, carts, 1)
	require.Len(t, carts[0].Products, 2)

	assert.Equal(t, int64(1), carts[0].UserID)
	assert.Equal(t, "2020-03-02T00:00:00.000Z", carts[0].Date)
	assert.Equal(t, int64(2), carts[0].Products[1].ProductID)
}

func TestFetchFailsOnErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := fakestore.NewClient(server.URL)
	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Equal(t, constants.CodeNetwork, constants.CodeOf(err))
	assert.Contains(t, err.Error(), "500")
}

func TestFetchFailsOnConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := fakestore.NewClient(server.URL)
	_, err := client.FetchUsers(context.Background())
	require.Error(t, err)
	assert.Equal(t, constants.CodeNetwork, constants.CodeOf(err))
}
