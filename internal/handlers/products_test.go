package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"
	"ecommerce_backend/internal/service"
)

func postForm(t *testing.T, r http.Handler, method, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %q: %v", k, err)
		}
	}
	_ = mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct_MissingStock(t *testing.T) {
	products := &mockProducts{}
	s := &service.Service{Products: products}
	r := newTestRouter(s)

	w := postForm(t, r, http.MethodPost, "/products", map[string]string{
		"product_name": "mug",
		"description":  "a mug",
		"price":        "3.50",
		"category_id":  "2",
		// stock omitted
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] != "All fields are required" {
		t.Fatalf("unexpected message: %q", m["message"])
	}
	if products.createCalls != 0 {
		t.Fatalf("no insert may happen on a validation failure, got %d calls", products.createCalls)
	}
}

func TestCreateProduct_Success(t *testing.T) {
	products := &mockProducts{product: models.Product{ID: 1, Name: "mug", Price: 3.50, CategoryID: 2, Stock: 7}}
	s := &service.Service{Products: products}
	r := newTestRouter(s)

	w := postForm(t, r, http.MethodPost, "/products", map[string]string{
		"product_name": "mug",
		"description":  "a mug",
		"price":        "3.50",
		"category_id":  "2",
		"stock":        "7",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if products.createCalls != 1 {
		t.Fatalf("expected one create call, got %d", products.createCalls)
	}
	in := products.lastCreate
	if in.Name != "mug" || in.Price != 3.50 || in.CategoryID != 2 || in.Stock != 7 {
		t.Fatalf("wrong input: %+v", in)
	}

	var resp struct {
		Message string         `json:"message"`
		Product models.Product `json:"product"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != "Product added successfully!" || resp.Product.ID != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateProduct_InvalidPrice(t *testing.T) {
	products := &mockProducts{}
	s := &service.Service{Products: products}
	r := newTestRouter(s)

	w := postForm(t, r, http.MethodPost, "/products", map[string]string{
		"product_name": "mug",
		"description":  "a mug",
		"price":        "cheap",
		"category_id":  "2",
		"stock":        "7",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if products.createCalls != 0 {
		t.Fatal("create must not run for an unparsable price")
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	products := &mockProducts{err: repository.ErrNotFound}
	s := &service.Service{Products: products}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/99", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["error"] != "Product not found" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPatchProduct_PassesSubmittedFields(t *testing.T) {
	products := &mockProducts{product: models.Product{ID: 1, Name: "mug", Price: 4.25, Stock: 7}}
	s := &service.Service{Products: products}
	r := newTestRouter(s)

	w := postForm(t, r, http.MethodPatch, "/products/1", map[string]string{
		"price": "4.25",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if products.patchCalls != 1 {
		t.Fatalf("expected one patch call, got %d", products.patchCalls)
	}
	in := products.lastPatch
	if in.Price != 4.25 || in.Name != "" || in.Stock != 0 {
		t.Fatalf("wrong patch input: %+v", in)
	}
}

func TestDeleteProduct(t *testing.T) {
	products := &mockProducts{}
	s := &service.Service{Products: products}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if products.deleteCalls != 1 {
		t.Fatalf("expected one delete call, got %d", products.deleteCalls)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] != "Product deleted successfully" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	products := &mockProducts{deleteErr: repository.ErrNotFound}
	s := &service.Service{Products: products}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/99", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
