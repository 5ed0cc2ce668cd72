package delivery

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/palloncino/storage-server-app-01/internal/product/domain"
	"github.com/palloncino/storage-server-app-01/internal/product/dto"
	"github.com/palloncino/storage-server-app-01/internal/product/usecase"
	"github.com/palloncino/storage-server-app-01/pkg/httputil"
	"github.com/palloncino/storage-server-app-01/pkg/jsonutil"
	"github.com/palloncino/storage-server-app-01/pkg/logger"
	"github.com/palloncino/storage-server-app-01/pkg/storage"
)

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	images         *storage.ImageStore
	maxImageSize   int64
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productUsecase usecase.ProductUsecase, images *storage.ImageStore, maxImageSize int64) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		images:         images,
		maxImageSize:   maxImageSize,
	}
}

// GetProducts returns all products
// GET /api/products/get-products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productUsecase.GetProducts()
	if err != nil {
		httputil.RespondError(c, err, "Error retrieving products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct creates a product from a multipart form with an optional
// image upload
// POST /api/products/create-product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating product: invalid price"})
		return
	}
	discount := 0.0
	if raw := c.PostForm("discount"); raw != "" {
		if discount, err = strconv.ParseFloat(raw, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating product: invalid discount"})
			return
		}
	}

	product := &domain.Product{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Category:    c.PostForm("category"),
		Company:     c.PostForm("company"),
		Components:  parseComponents(c.PostForm("components")),
		Discount:    discount,
	}

	if file, err := c.FormFile("image"); err == nil {
		if file.Size > h.maxImageSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Image too large"})
			return
		}
		imgURL, err := h.images.Save(file)
		if err != nil {
			httputil.RespondError(c, err, "Error creating product")
			return
		}
		product.ImgURL = imgURL
	}

	if err := h.productUsecase.CreateProduct(product); err != nil {
		httputil.RespondError(c, err, "Error creating product")
		return
	}

	logger.Log.Infof("Product created successfully with ID: %d", product.ID)
	c.JSON(http.StatusCreated, product)
}

// EditProduct updates a product in place, optionally replacing its image
// PUT /api/products/edit-product
func (h *ProductHandler) EditProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.PostForm("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID provided"})
		return
	}

	updates := map[string]any{
		"name":        c.PostForm("name"),
		"description": c.PostForm("description"),
		"category":    c.PostForm("category"),
		"company":     c.PostForm("company"),
		"components":  parseComponents(c.PostForm("components")),
	}
	if raw := c.PostForm("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating product: invalid price"})
			return
		}
		updates["price"] = price
	}

	newImgURL := ""
	if file, err := c.FormFile("image"); err == nil {
		if file.Size > h.maxImageSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Image too large"})
			return
		}
		if newImgURL, err = h.images.Save(file); err != nil {
			httputil.RespondError(c, err, "Error updating product")
			return
		}
		updates["img_url"] = newImgURL
	}

	product, err := h.productUsecase.EditProduct(id, updates)
	if err != nil {
		// The update never landed, so the freshly uploaded file is orphaned.
		if newImgURL != "" {
			_ = h.images.Remove(newImgURL)
		}
		httputil.RespondError(c, err, "Error updating product")
		return
	}

	logger.Log.Infof("Product ID %d updated successfully.", id)
	c.JSON(http.StatusOK, product)
}

// DeleteProducts bulk-deletes products and their image files
// DELETE /api/products/delete-products
func (h *ProductHandler) DeleteProducts(c *gin.Context) {
	var req dto.DeleteProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request, all 'ids' must be valid integers."})
		return
	}

	ids, err := coerceIDs(req.Ids)
	if err != nil {
		logger.Log.Error("Invalid delete request: all 'ids' must be valid integers")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request, all 'ids' must be valid integers."})
		return
	}

	logger.Log.Infof("Received request to delete products with IDs: %s", httputil.JoinIDs(ids))

	count, err := h.productUsecase.DeleteProducts(ids)
	if err != nil {
		httputil.RespondError(c, err, "Error deleting products")
		return
	}

	logger.Log.Infof("%d products with IDs: %s successfully deleted.", count, httputil.JoinIDs(ids))
	c.JSON(http.StatusOK, gin.H{
		"ids":     ids,
		"message": fmt.Sprintf("%d products with IDs: %s were successfully deleted.", count, httputil.JoinIDs(ids)),
	})
}

// parseComponents decodes the components form field, which clients send as
// a JSON string (sometimes encoded more than once).
func parseComponents(raw string) domain.Components {
	if raw == "" {
		return domain.Components{}
	}
	value, err := jsonutil.DecodeNested([]byte(raw))
	if err != nil {
		return domain.Components{}
	}
	return domain.Components(jsonutil.AsArray(value))
}
