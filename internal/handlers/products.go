package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ecommerce_backend/internal/media"
	"ecommerce_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const productImageField = "product_image"

// formFloat parses an optional numeric form field; empty means zero.
func formFloat(c *gin.Context, name string) (float64, error) {
	s := c.PostForm(name)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// formInt parses an optional integer form field; empty means zero.
func formInt(c *gin.Context, name string) (int, error) {
	s := c.PostForm(name)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// bindProductForm reads the multipart fields and the optional image into
// a ProductInput. The image, when present, is validated and stored
// through the media pipeline before the input is returned. Reports false
// when a response has already been written.
func (h *Handler) bindProductForm(c *gin.Context) (service.ProductInput, bool) {
	var in service.ProductInput
	var err error

	in.Name = c.PostForm("product_name")
	in.Description = c.PostForm("description")
	if in.Price, err = formFloat(c, "price"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid price"})
		return in, false
	}
	if in.CategoryID, err = formInt(c, "category_id"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid category_id"})
		return in, false
	}
	if in.Stock, err = formInt(c, "stock"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid stock"})
		return in, false
	}

	if file, ferr := c.FormFile(productImageField); ferr == nil {
		in.ImagePath, err = h.media.Save(file)
		if err != nil {
			if errors.Is(err, media.ErrUnsupportedImage) {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return in, false
			}
			if h.log != nil {
				h.log.Errorw("product_image_store_failed", "err", err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return in, false
		}
	}
	return in, true
}

// @Summary      Add a product
// @Description  Multipart form; optional product_image (JPEG/PNG), resized before persistence.
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        product_name  formData  string  true  "Name"
// @Param        description   formData  string  true  "Description"
// @Param        price         formData  number  true  "Price"
// @Param        category_id   formData  int     true  "Category ID"
// @Param        stock         formData  int     true  "Stock"
// @Param        product_image formData  file    false "Image"
// @Success      201  {object}  map[string]interface{}  "message, product"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /products [post]
func (h *Handler) createProduct(c *gin.Context) {
	// Required-field check mirrors the creation contract: every field
	// must be present, stock and price included.
	for _, field := range []string{"product_name", "description", "price", "category_id", "stock"} {
		if c.PostForm(field) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}
	}

	in, ok := h.bindProductForm(c)
	if !ok {
		return
	}

	product, err := h.services.Products.Create(c.Request.Context(), in)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("product_create_failed", "name", in.Name, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully!",
		"product": product,
	})
}

// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  models.Product
// @Router       /products [get]
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.services.Products.List(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("products_list_failed", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        product_id  path  int  true  "Product ID"
// @Success      200  {object}  models.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{product_id} [get]
func (h *Handler) getProduct(c *gin.Context) {
	id, ok := pathID(c, "product_id")
	if !ok {
		return
	}
	product, err := h.services.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrStoreError(c, err, "Product not found", http.StatusBadRequest, "product_get_failed")
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary      Replace a product
// @Description  Full overwrite; a newly uploaded image replaces and deletes the prior file.
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        product_id  path  int  true  "Product ID"
// @Success      200  {object}  models.Product
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /products/{product_id} [put]
func (h *Handler) replaceProduct(c *gin.Context) {
	id, ok := pathID(c, "product_id")
	if !ok {
		return
	}
	in, ok := h.bindProductForm(c)
	if !ok {
		return
	}

	product, err := h.services.Products.Replace(c.Request.Context(), id, in)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if h.log != nil {
			h.log.Errorw("product_replace_failed", "id", id, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary      Partially update a product
// @Description  Omitted or zero-valued fields keep their stored values.
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        product_id  path  int  true  "Product ID"
// @Success      200  {object}  map[string]interface{}  "message, product"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /products/{product_id} [patch]
func (h *Handler) patchProduct(c *gin.Context) {
	id, ok := pathID(c, "product_id")
	if !ok {
		return
	}
	in, ok := h.bindProductForm(c)
	if !ok {
		return
	}

	product, err := h.services.Products.PartialUpdate(c.Request.Context(), id, in)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		if h.log != nil {
			h.log.Errorw("product_patch_failed", "id", id, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully!",
		"product": product,
	})
}

// @Summary      Delete a product
// @Description  Removes the row, then its stored image file best-effort.
// @Tags         products
// @Produce      json
// @Param        product_id  path  int  true  "Product ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /products/{product_id} [delete]
func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := pathID(c, "product_id")
	if !ok {
		return
	}
	if err := h.services.Products.Delete(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if h.log != nil {
			h.log.Errorw("product_delete_failed", "id", id, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
