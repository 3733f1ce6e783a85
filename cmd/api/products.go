package main

import (
	"errors"
	"net/http"
	"strings"

	"bisame/internal/domain/products"
	"bisame/internal/domain/users"
	"bisame/internal/params"

	"github.com/go-chi/chi/v5"
)

type VendorInfoPayload struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
}

type CreateProductPayload struct {
	Code        string             `json:"code" validate:"required,max=64"`
	Name        string             `json:"name" validate:"required,max=200"`
	Description string             `json:"description" validate:"required"`
	Price       float64            `json:"price" validate:"gt=0"`
	VendorInfo  *VendorInfoPayload `json:"vendorInfo" validate:"required"`
}

type UpdateProductPayload struct {
	Name        string             `json:"name" validate:"required,max=200"`
	Description string             `json:"description" validate:"required"`
	Price       float64            `json:"price" validate:"gt=0"`
	VendorInfo  *VendorInfoPayload `json:"vendorInfo" validate:"required"`
}

// ProductResponse is the projection returned after a write.
type ProductResponse struct {
	ID          int64               `json:"id"`
	Code        string              `json:"code"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	VendorInfo  products.VendorInfo `json:"vendorInfo"`
}

func newProductResponse(p *products.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		VendorInfo:  p.VendorInfo,
	}
}

type ProductListData struct {
	Products []*products.Product `json:"products"`
	params.Pagination
}

type ProductListResponse struct {
	Message string          `json:"message" example:"Request successful"`
	Data    ProductListData `json:"data"`
}

type ProductResultResponse struct {
	Message string          `json:"message" example:"Product added successful"`
	Data    ProductResponse `json:"data"`
}

type ProductDetailResponse struct {
	Message string            `json:"message" example:"Product retrieved successfully"`
	Product *products.Product `json:"product"`
}

// checkVendorInfo trims the descriptor and reports the client message for an incomplete one.
func checkVendorInfo(v *VendorInfoPayload) (string, bool) {
	if v == nil {
		return "All fields are required", false
	}
	v.Name = strings.TrimSpace(v.Name)
	v.Email = users.NormalizeEmail(v.Email)
	if v.Name == "" || v.Email == "" {
		return "Invalid vendor details", false
	}
	return "", true
}

// listProductsHandler godoc
//
//	@Summary		List products
//	@Description	Paginated product catalogue
//	@Tags			products
//	@Produce		json
//	@Param			page	query		int	false	"Page (default 1)"
//	@Param			limit	query		int	false	"Page size (default 10, max 100)"
//	@Success		200		{object}	ProductListResponse
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/api/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	p := params.ParsePagination(r.URL.Query())

	list, total, err := app.store.Products.List(r.Context(), p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)

	if err := writeJSON(w, http.StatusOK, ProductListResponse{
		Message: "Request successful",
		Data:    ProductListData{Products: list, Pagination: p},
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// searchProductsHandler godoc
//
//	@Summary		Search products
//	@Description	Case-insensitive substring match on name and vendorName, exact code, inclusive price range
//	@Tags			products
//	@Produce		json
//	@Param			name		query		string	false	"Name contains"
//	@Param			vendorName	query		string	false	"Vendor name contains"
//	@Param			code		query		string	false	"Exact code"
//	@Param			minPrice	query		number	false	"Minimum price"
//	@Param			maxPrice	query		number	false	"Maximum price"
//	@Success		200			{array}		products.Product
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/api/products/search [get]
func (app *application) searchProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := products.ParseSearchFilter(r.URL.Query())
	if err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	list, err := app.store.Products.Search(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getProductHandler godoc
//
//	@Summary		Get a product
//	@Tags			products
//	@Produce		json
//	@Param			code	path		string	true	"Product code"
//	@Success		200		{object}	ProductDetailResponse
//	@Failure		404		{object}	error	"Product not found"
//	@Router			/api/products/{code} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	product, err := app.store.Products.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			app.notFoundResponse(w, r, "Product not found")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, ProductDetailResponse{
		Message: "Product retrieved successfully",
		Product: product,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createProductHandler godoc
//
//	@Summary		Create a product
//	@Description	The vendor email must belong to a registered user and the code must be unused
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateProductPayload	true	"Product"
//	@Success		201		{object}	ProductResultResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error	"Vendor not found"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/api/products/create [post]
func (app *application) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateProductPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	payload.Code = strings.TrimSpace(payload.Code)
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Description = strings.TrimSpace(payload.Description)

	if payload.Code == "" || payload.Name == "" || payload.Description == "" || payload.Price == 0 || payload.VendorInfo == nil {
		app.badRequestResponse(w, r, "All fields are required")
		return
	}
	if msg, ok := checkVendorInfo(payload.VendorInfo); !ok {
		app.badRequestResponse(w, r, msg)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationMessage(err))
		return
	}

	ctx := r.Context()

	vendor, err := app.store.Users.GetByEmail(ctx, payload.VendorInfo.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			app.notFoundResponse(w, r, "Vendor not found")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	// when creation is gated the descriptor has to name the caller
	if app.config.products.createRequiresAuth {
		claims := getClaimsFromContext(r)
		if claims == nil {
			app.unauthorizedErrorResponse(w, r, "You do not have permission to access this resource")
			return
		}
		if actorID, err := claims.UserID(); err != nil || actorID != vendor.ID {
			app.unauthorizedErrorResponse(w, r, "Product does not belong to vendor")
			return
		}
	}

	if _, err := app.store.Products.GetByCode(ctx, payload.Code); err == nil {
		app.conflictResponse(w, r, "Product code already exists")
		return
	} else if !errors.Is(err, products.ErrNotFound) {
		app.internalServerError(w, r, err)
		return
	}

	product := &products.Product{
		Code:        payload.Code,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		VendorInfo: products.VendorInfo{
			Name:  payload.VendorInfo.Name,
			Email: payload.VendorInfo.Email,
		},
	}

	if err := app.store.Products.Create(ctx, product); err != nil {
		if errors.Is(err, products.ErrDuplicateCode) {
			app.conflictResponse(w, r, "Product code already exists")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, ProductResultResponse{
		Message: "Product added successful",
		Data:    newProductResponse(product),
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateProductHandler godoc
//
//	@Summary		Update a product
//	@Description	Only the vendor who owns the product may update it
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string					true	"Product code"
//	@Param			payload	body		UpdateProductPayload	true	"Product"
//	@Success		201		{object}	ProductResultResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error	"Product does not belong to vendor"
//	@Failure		403		{object}	error	"Vendor access required"
//	@Failure		404		{object}	error	"Product not found"
//	@Security		ApiKeyAuth
//	@Router			/api/products/{code}/update [put]
func (app *application) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	product := getProductFromContext(r)

	var payload UpdateProductPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Description = strings.TrimSpace(payload.Description)

	if payload.Name == "" || payload.Description == "" || payload.Price == 0 || payload.VendorInfo == nil {
		app.badRequestResponse(w, r, "All fields are required")
		return
	}
	if msg, ok := checkVendorInfo(payload.VendorInfo); !ok {
		app.badRequestResponse(w, r, msg)
		return
	}

	// ownership cannot be handed over through an update
	if !strings.EqualFold(payload.VendorInfo.Email, product.VendorInfo.Email) {
		app.unauthorizedErrorResponse(w, r, "Product does not belong to vendor")
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationMessage(err))
		return
	}

	product.Name = payload.Name
	product.Description = payload.Description
	product.Price = payload.Price
	product.VendorInfo.Name = payload.VendorInfo.Name

	if err := app.store.Products.Update(r.Context(), product); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			app.notFoundResponse(w, r, "Product not found")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, ProductResultResponse{
		Message: "Product updated successful",
		Data:    newProductResponse(product),
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteProductHandler godoc
//
//	@Summary		Delete a product
//	@Description	Only the vendor who owns the product may delete it
//	@Tags			products
//	@Produce		json
//	@Param			code	path		string	true	"Product code"
//	@Success		200		{object}	map[string]string
//	@Failure		401		{object}	error	"Product does not belong to vendor"
//	@Failure		403		{object}	error	"Vendor access required"
//	@Failure		404		{object}	error	"Product not found"
//	@Security		ApiKeyAuth
//	@Router			/api/products/{code}/delete [delete]
func (app *application) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	product := getProductFromContext(r)

	if err := app.store.Products.Delete(r.Context(), product.Code); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			app.notFoundResponse(w, r, "Product not found")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.messageResponse(w, http.StatusOK, "Product deleted successfully", "", nil); err != nil {
		app.internalServerError(w, r, err)
	}
}
