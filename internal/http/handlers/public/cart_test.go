package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pizza-palace/internal/auth"
	"github.com/pizza-palace/internal/http/handlers/shared"
	"github.com/pizza-palace/internal/models"
	"github.com/pizza-palace/internal/provider"
	"github.com/pizza-palace/internal/repository"
	"github.com/pizza-palace/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newCartTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:cart_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Topping{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	category := models.Category{Name: "Pizzas", SortOrder: 1}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	product := models.Product{CategoryID: category.ID, Name: "Margherita", Price: models.NewMoneyFromFloat(10.00), IsActive: true}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	container := &provider.Container{
		CartService: service.NewCartService(
			repository.NewProductRepository(db),
			repository.NewToppingRepository(db),
		),
	}
	handler := New(container)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(shared.ContextKeyIdentity, auth.Identity{UserID: "user-alice", Email: "alice@example.com"})
		c.Next()
	})
	r.POST("/cart/items", handler.AddCartItem)
	r.PUT("/cart/items/:product_id", handler.UpdateCartItem)
	return r
}

func doCartRequest(t *testing.T, r *gin.Engine, method, path, body string) (int, service.CartView) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		StatusCode int              `json:"status_code"`
		Data       service.CartView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, w.Body.String())
	}
	return resp.StatusCode, resp.Data
}

func TestUpdateCartItemClampsQuantity(t *testing.T) {
	r := newCartTestRouter(t)

	code, _ := doCartRequest(t, r, http.MethodPost, "/cart/items", `{"product_id":1,"quantity":2}`)
	if code != 0 {
		t.Fatalf("expected add item success, got status_code %d", code)
	}

	for _, body := range []string{`{"quantity":0}`, `{"quantity":-3}`} {
		code, cart := doCartRequest(t, r, http.MethodPut, "/cart/items/1", body)
		if code != 0 {
			t.Fatalf("expected update %s to succeed, got status_code %d", body, code)
		}
		if len(cart.Items) != 1 {
			t.Fatalf("expected 1 line item after %s, got %d", body, len(cart.Items))
		}
		if cart.Items[0].Quantity != 1 {
			t.Fatalf("expected quantity clamped to 1 after %s, got %d", body, cart.Items[0].Quantity)
		}
	}
}
