package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"phonekart-backend/internal/models"
	"phonekart-backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var nopLog = zerolog.Nop()

// mockUserStore implements store.UserStore. Unset Func fields fall back to
// "not found" / success defaults; Set* calls record the value they were
// given so tests can assert on the persisted state.
type mockUserStore struct {
	CreateFunc           func(ctx context.Context, user *models.User) (string, error)
	FindByEmailFunc      func(ctx context.Context, email string) (*models.User, error)
	FindByIDFunc         func(ctx context.Context, id string) (*models.User, error)
	SetCartItemsFunc     func(ctx context.Context, id string, items []models.CartItem) error
	SetWishListItemsFunc func(ctx context.Context, id string, items []string) error

	savedCartItems     []models.CartItem
	savedWishListItems []string
	cartSaves          int
	wishListSaves      int
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return "64f000000000000000000001", nil
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) SetCartItems(ctx context.Context, id string, items []models.CartItem) error {
	m.savedCartItems = items
	m.cartSaves++
	if m.SetCartItemsFunc != nil {
		return m.SetCartItemsFunc(ctx, id, items)
	}
	return nil
}

func (m *mockUserStore) SetWishListItems(ctx context.Context, id string, items []string) error {
	m.savedWishListItems = items
	m.wishListSaves++
	if m.SetWishListItemsFunc != nil {
		return m.SetWishListItemsFunc(ctx, id, items)
	}
	return nil
}

// mockProductStore implements store.ProductStore over a fixed product slice.
type mockProductStore struct {
	products []models.Product

	FindByLinkFunc  func(ctx context.Context, link string) (*models.Product, error)
	FindByLinksFunc func(ctx context.Context, links []string) ([]models.Product, error)
}

func (m *mockProductStore) matching(filter func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range m.products {
		if filter(p) {
			out = append(out, p)
		}
	}
	return out
}

func page(products []models.Product, skip, limit int64) []models.Product {
	if skip >= int64(len(products)) {
		return nil
	}
	products = products[skip:]
	if int64(len(products)) > limit {
		products = products[:limit]
	}
	return products
}

func (m *mockProductStore) FindByBrand(ctx context.Context, brand string, skip, limit int64) ([]models.Product, error) {
	return page(m.matching(func(p models.Product) bool { return p.Brand == brand }), skip, limit), nil
}

func (m *mockProductStore) CountByBrand(ctx context.Context, brand string) (int64, error) {
	return int64(len(m.matching(func(p models.Product) bool { return p.Brand == brand }))), nil
}

func (m *mockProductStore) FindByBrandAndModel(ctx context.Context, brand, model string, skip, limit int64) ([]models.Product, error) {
	return page(m.matching(func(p models.Product) bool { return p.Brand == brand && p.Model == model }), skip, limit), nil
}

func (m *mockProductStore) CountByBrandAndModel(ctx context.Context, brand, model string) (int64, error) {
	return int64(len(m.matching(func(p models.Product) bool { return p.Brand == brand && p.Model == model }))), nil
}

func (m *mockProductStore) FindByLink(ctx context.Context, link string) (*models.Product, error) {
	if m.FindByLinkFunc != nil {
		return m.FindByLinkFunc(ctx, link)
	}
	for _, p := range m.products {
		if p.ProductLink == link {
			product := p
			return &product, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockProductStore) FindByLinks(ctx context.Context, links []string) ([]models.Product, error) {
	if m.FindByLinksFunc != nil {
		return m.FindByLinksFunc(ctx, links)
	}
	wanted := make(map[string]bool, len(links))
	for _, l := range links {
		wanted[l] = true
	}
	return m.matching(func(p models.Product) bool { return wanted[p.ProductLink] }), nil
}

func (m *mockProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	return m.products, nil
}

type mockBrandStore struct {
	brands []models.Brand
	err    error
}

func (m *mockBrandStore) FindAll(ctx context.Context) ([]models.Brand, error) {
	return m.brands, m.err
}

type mockOrderStore struct {
	CreateFunc func(ctx context.Context, order *models.Order) (*models.Order, error)
	created    *models.Order
}

func (m *mockOrderStore) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	m.created = order
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	return order, nil
}

type mockContactStore struct {
	FindByUserFunc func(ctx context.Context, userID string) ([]models.Contact, error)
	FindByIDFunc   func(ctx context.Context, id string) (*models.Contact, error)
	CreateFunc     func(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	UpdateFunc     func(ctx context.Context, id string, name, number string) (*models.Contact, error)
	DeleteFunc     func(ctx context.Context, id string) error

	deleted string
}

func (m *mockContactStore) FindByUser(ctx context.Context, userID string) ([]models.Contact, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return []models.Contact{}, nil
}

func (m *mockContactStore) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockContactStore) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactStore) Update(ctx context.Context, id string, name, number string) (*models.Contact, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, name, number)
	}
	return &models.Contact{Name: name, Number: number}, nil
}

func (m *mockContactStore) Delete(ctx context.Context, id string) error {
	m.deleted = id
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockGateway struct {
	CreateOrderFunc func(amountMinor int64, receipt string) (map[string]interface{}, error)
	amountMinor     int64
}

func (m *mockGateway) CreateOrder(amountMinor int64, receipt string) (map[string]interface{}, error) {
	m.amountMinor = amountMinor
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(amountMinor, receipt)
	}
	return map[string]interface{}{"id": "order_mock", "amount": amountMinor}, nil
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authedRequest(method, path, authorization string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	return req, httptest.NewRecorder()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
