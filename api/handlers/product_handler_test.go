package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"phonekart-backend/internal/models"
)

func productRouter(products *mockProductStore) *gin.Engine {
	h := NewProductHandler(products, nopLog)
	r := gin.New()
	r.GET("/api/products/brand/:brand", h.ByBrand)
	r.GET("/api/products/model/:brand/:model", h.ByBrandAndModel)
	r.GET("/api/products/product/:productId", h.ByLink)
	r.GET("/api/products/all-products-ids", h.AllLinkIDs)
	return r
}

func catalogOf(brand, model string, n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, models.Product{
			Brand:       brand,
			Model:       model,
			ProductName: fmt.Sprintf("%s %s %d", brand, model, i),
			ProductLink: fmt.Sprintf("/p/%s-%d", brand, i),
		})
	}
	return products
}

func TestByBrandPagination(t *testing.T) {
	r := productRouter(&mockProductStore{products: catalogOf("Acme", "A1", 20)})

	tests := []struct {
		page      int
		wantCount int
		wantMore  bool
		wantLeft  float64
	}{
		{1, 9, true, 11},
		{2, 9, true, 2},
		{3, 2, false, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/products/brand/Acme?page=%d", tt.page), nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			products := body["products"].([]interface{})
			if len(products) != tt.wantCount {
				t.Errorf("got %d products, want %d", len(products), tt.wantCount)
			}
			if body["hasMore"] != tt.wantMore {
				t.Errorf("hasMore = %v, want %v", body["hasMore"], tt.wantMore)
			}
			if body["itemsLeft"] != tt.wantLeft {
				t.Errorf("itemsLeft = %v, want %v", body["itemsLeft"], tt.wantLeft)
			}
			if body["currentPage"] != float64(tt.page) {
				t.Errorf("currentPage = %v, want %d", body["currentPage"], tt.page)
			}
		})
	}
}

func TestByBrandPastTheEndIs404(t *testing.T) {
	r := productRouter(&mockProductStore{products: catalogOf("Acme", "A1", 20)})
	w := doRequest(t, r, http.MethodGet, "/api/products/brand/Acme?page=4", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestByBrandUnknownBrand(t *testing.T) {
	r := productRouter(&mockProductStore{products: catalogOf("Acme", "A1", 3)})
	w := doRequest(t, r, http.MethodGet, "/api/products/brand/Nokia", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestByBrandDefaultsToFirstPage(t *testing.T) {
	r := productRouter(&mockProductStore{products: catalogOf("Acme", "A1", 12)})

	for _, query := range []string{"", "?page=abc", "?page=0"} {
		w := doRequest(t, r, http.MethodGet, "/api/products/brand/Acme"+query, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("query %q: status = %d", query, w.Code)
		}
		body := decodeBody(t, w)
		if body["currentPage"] != float64(1) {
			t.Errorf("query %q: currentPage = %v, want 1", query, body["currentPage"])
		}
	}
}

func TestByBrandAndModel(t *testing.T) {
	products := append(catalogOf("Acme", "A1", 4), catalogOf("Acme", "A2", 2)...)
	r := productRouter(&mockProductStore{products: products})

	w := doRequest(t, r, http.MethodGet, "/api/products/model/Acme/A2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if got := len(body["products"].([]interface{})); got != 2 {
		t.Errorf("got %d products, want 2", got)
	}

	w = doRequest(t, r, http.MethodGet, "/api/products/model/Acme/A9", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown model: status = %d, want 404", w.Code)
	}
}

func TestByLink(t *testing.T) {
	r := productRouter(&mockProductStore{products: []models.Product{
		{Brand: "Acme", ProductName: "Acme One", ProductLink: "/p/acme-one"},
	}})

	w := doRequest(t, r, http.MethodGet, "/api/products/product/acme-one", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	product := body["product"].(map[string]interface{})
	if product["product_link"] != "/p/acme-one" {
		t.Errorf("product = %v", product)
	}

	w = doRequest(t, r, http.MethodGet, "/api/products/product/ghost", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown product: status = %d, want 404", w.Code)
	}
}

func TestAllLinkIDsStripPrefix(t *testing.T) {
	r := productRouter(&mockProductStore{products: []models.Product{
		{ProductLink: "/p/alpha"},
		{ProductLink: "/p/beta"},
	}})

	w := doRequest(t, r, http.MethodGet, "/api/products/all-products-ids", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	links := body["allProductLinks"].([]interface{})
	if len(links) != 2 || links[0] != "alpha" || links[1] != "beta" {
		t.Errorf("allProductLinks = %v", links)
	}
}
