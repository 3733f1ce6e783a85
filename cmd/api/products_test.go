package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLifecycle(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	a := registerAndLogin(t, mux, "A", "a@x.com", "secret1", "vendor")
	b := registerAndLogin(t, mux, "B", "b@x.com", "secret2", "vendor")

	rr := executeRequest(t, mux, http.MethodPost, "/api/products/create", productPayload("C1", "P", 5, "A", "a@x.com"), "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created ProductResultResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "Product added successful", created.Message)
	assert.Equal(t, "P", created.Data.Name)
	assert.Equal(t, 5.0, created.Data.Price)
	assert.Equal(t, "a@x.com", created.Data.VendorInfo.Email)

	rr = executeRequest(t, mux, http.MethodGet, "/api/products/C1", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var detail ProductDetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	assert.Equal(t, "Product retrieved successfully", detail.Message)
	assert.Equal(t, "C1", detail.Product.Code)

	update := map[string]any{
		"name":        "P2",
		"description": "d2",
		"price":       7.5,
		"vendorInfo":  map[string]string{"name": "A", "email": "a@x.com"},
	}

	rr = executeRequest(t, mux, http.MethodPut, "/api/products/C1/update", update, a.accessToken)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var updated ProductResultResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Product updated successful", updated.Message)
	assert.Equal(t, "P2", updated.Data.Name)
	assert.Equal(t, 7.5, updated.Data.Price)

	rr = executeRequest(t, mux, http.MethodPut, "/api/products/C1/update", update, b.accessToken)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Product does not belong to vendor", decodeBody(t, rr)["message"])

	rr = executeRequest(t, mux, http.MethodDelete, "/api/products/C1/delete", nil, b.accessToken)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Product does not belong to vendor", decodeBody(t, rr)["message"])

	rr = executeRequest(t, mux, http.MethodDelete, "/api/products/C1/delete", nil, a.accessToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Product deleted successfully", decodeBody(t, rr)["message"])

	rr = executeRequest(t, mux, http.MethodGet, "/api/products/C1", nil, "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Product not found", decodeBody(t, rr)["message"])
}

func TestCreateProductValidation(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	registerAndLogin(t, mux, "A", "a@x.com", "secret1", "vendor")

	rr := executeRequest(t, mux, http.MethodPost, "/api/products/create", productPayload("C1", "P", 5, "A", "a@x.com"), "")
	require.Equal(t, http.StatusCreated, rr.Code)

	missingVendor := productPayload("C2", "P", 5, "A", "a@x.com")
	delete(missingVendor, "vendorInfo")

	tests := []struct {
		name    string
		payload map[string]any
		status  int
		message string
	}{
		{"duplicate code", productPayload("C1", "P", 5, "A", "a@x.com"), http.StatusBadRequest, "Product code already exists"},
		{"unknown vendor", productPayload("C2", "P", 5, "Z", "z@x.com"), http.StatusNotFound, "Vendor not found"},
		{"missing price", productPayload("C2", "P", 0, "A", "a@x.com"), http.StatusBadRequest, "All fields are required"},
		{"negative price", productPayload("C2", "P", -1, "A", "a@x.com"), http.StatusBadRequest, "price must be greater than 0"},
		{"missing name", productPayload("C2", "", 5, "A", "a@x.com"), http.StatusBadRequest, "All fields are required"},
		{"missing vendor descriptor", missingVendor, http.StatusBadRequest, "All fields are required"},
		{"incomplete vendor descriptor", productPayload("C2", "P", 5, "", "a@x.com"), http.StatusBadRequest, "Invalid vendor details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeRequest(t, mux, http.MethodPost, "/api/products/create", tt.payload, "")
			require.Equal(t, tt.status, rr.Code, rr.Body.String())
			assert.Equal(t, tt.message, decodeBody(t, rr)["message"])
		})
	}
}

func TestCreateProductRequiresAuthWhenConfigured(t *testing.T) {
	app := newTestApplication(t, withConfig(func(c *config) {
		c.products.createRequiresAuth = true
	}))
	mux := app.mount()

	a := registerAndLogin(t, mux, "A", "a@x.com", "secret1", "vendor")
	b := registerAndLogin(t, mux, "B", "b@x.com", "secret2", "vendor")
	c := registerAndLogin(t, mux, "C", "c@x.com", "secret3", "customer")

	payload := productPayload("C1", "P", 5, "A", "a@x.com")

	rr := executeRequest(t, mux, http.MethodPost, "/api/products/create", payload, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = executeRequest(t, mux, http.MethodPost, "/api/products/create", payload, c.accessToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Vendor access required", decodeBody(t, rr)["message"])

	rr = executeRequest(t, mux, http.MethodPost, "/api/products/create", payload, b.accessToken)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Product does not belong to vendor", decodeBody(t, rr)["message"])

	rr = executeRequest(t, mux, http.MethodPost, "/api/products/create", payload, a.accessToken)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestUpdateProductGates(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	a := registerAndLogin(t, mux, "A", "a@x.com", "secret1", "vendor")
	registerAndLogin(t, mux, "B", "b@x.com", "secret2", "vendor")
	customer := registerAndLogin(t, mux, "C", "c@x.com", "secret3", "customer")

	rr := executeRequest(t, mux, http.MethodPost, "/api/products/create", productPayload("C1", "P", 5, "A", "a@x.com"), "")
	require.Equal(t, http.StatusCreated, rr.Code)

	valid := map[string]any{
		"name":        "P2",
		"description": "d2",
		"price":       6,
		"vendorInfo":  map[string]string{"name": "A", "email": "a@x.com"},
	}

	tests := []struct {
		name    string
		path    string
		payload map[string]any
		token   string
		status  int
		message string
	}{
		{"no bearer", "/api/products/C1/update", valid, "", http.StatusUnauthorized, "You do not have permission to access this resource"},
		{"bad bearer", "/api/products/C1/update", valid, "not-a-token", http.StatusForbidden, "Invalid token"},
		{"customer role", "/api/products/C1/update", valid, customer.accessToken, http.StatusForbidden, "Vendor access required"},
		{"unknown product", "/api/products/NOPE/update", valid, a.accessToken, http.StatusNotFound, "Product not found"},
		{"missing fields", "/api/products/C1/update", map[string]any{"name": "P2"}, a.accessToken, http.StatusBadRequest, "All fields are required"},
		{
			"incomplete vendor descriptor", "/api/products/C1/update",
			map[string]any{"name": "P2", "description": "d", "price": 6, "vendorInfo": map[string]string{"email": "a@x.com"}},
			a.accessToken, http.StatusBadRequest, "Invalid vendor details",
		},
		{
			"handing over to another vendor", "/api/products/C1/update",
			map[string]any{"name": "P2", "description": "d", "price": 6, "vendorInfo": map[string]string{"name": "B", "email": "b@x.com"}},
			a.accessToken, http.StatusUnauthorized, "Product does not belong to vendor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeRequest(t, mux, http.MethodPut, tt.path, tt.payload, tt.token)
			require.Equal(t, tt.status, rr.Code, rr.Body.String())
			assert.Equal(t, tt.message, decodeBody(t, rr)["message"])
		})
	}

	rr = executeRequest(t, mux, http.MethodDelete, "/api/products/NOPE/delete", nil, a.accessToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListProductsPagination(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	registerAndLogin(t, mux, "A", "a@x.com", "secret1", "vendor")
	for i := 1; i <= 12; i++ {
		rr := executeRequest(t, mux, http.MethodPost, "/api/products/create",
			productPayload(fmt.Sprintf("C%02d", i), fmt.Sprintf("P%d", i), float64(i), "A", "a@x.com"), "")
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := executeRequest(t, mux, http.MethodGet, "/api/products?page=2&limit=5", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ProductListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Request successful", resp.Message)
	assert.Len(t, resp.Data.Products, 5)
	assert.Equal(t, 2, resp.Data.Page)
	assert.Equal(t, 5, resp.Data.Limit)
	assert.Equal(t, 12, resp.Data.Total)
	assert.Equal(t, 3, resp.Data.TotalPages)
	assert.Equal(t, "C06", resp.Data.Products[0].Code)

	rr = executeRequest(t, mux, http.MethodGet, "/api/products", nil, "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Products, 10)
	assert.Equal(t, 1, resp.Data.Page)
	assert.Equal(t, 2, resp.Data.TotalPages)

	rr = executeRequest(t, mux, http.MethodGet, "/api/products?page=9223372036854775807&limit=10", nil, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var beyond ProductListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &beyond))
	assert.Empty(t, beyond.Data.Products)
	assert.Equal(t, 12, beyond.Data.Total)
	assert.False(t, beyond.Data.HasNext)
}

func TestSearchProducts(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	registerAndLogin(t, mux, "Acme Store", "a@x.com", "secret1", "vendor")
	for i, price := range []float64{5, 10, 15, 20, 25} {
		rr := executeRequest(t, mux, http.MethodPost, "/api/products/create",
			productPayload(fmt.Sprintf("S%d", i), fmt.Sprintf("Widget %d", i), price, "Acme Store", "a@x.com"), "")
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	search := func(query string) []map[string]any {
		rr := executeRequest(t, mux, http.MethodGet, "/api/products/search?"+query, nil, "")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var out []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
		return out
	}

	inRange := search("minPrice=10&maxPrice=20")
	require.Len(t, inRange, 3)
	for _, p := range inRange {
		price := p["price"].(float64)
		assert.GreaterOrEqual(t, price, 10.0)
		assert.LessOrEqual(t, price, 20.0)
	}

	assert.Len(t, search("name=widget"), 5)
	assert.Len(t, search("vendorName=acme"), 5)
	assert.Len(t, search("code=S3"), 1)
	assert.Len(t, search("minPrice=21"), 1)
	assert.Empty(t, search("name=gadget"))

	rr := executeRequest(t, mux, http.MethodGet, "/api/products/search?minPrice=cheap", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
