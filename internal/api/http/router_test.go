package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/shop-service/internal/api/http/handlers"
	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/config"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/events"
	"github.com/spec-kit/shop-service/internal/observability"
	"github.com/spec-kit/shop-service/internal/persistence"
	"github.com/spec-kit/shop-service/internal/repository"
	"github.com/spec-kit/shop-service/internal/service"
	"github.com/spec-kit/shop-service/internal/storage"
	"github.com/spec-kit/shop-service/internal/worker"
)

const (
	adminToken = "Bearer demo_token_1"
	userToken  = "Bearer demo_token_2"
)

type testServer struct {
	app        *fiber.App
	categories repository.CategoryRepository
	uploadDir  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()
	metrics := observability.NewMetrics("shop_test")

	var seeded []domain.User
	for _, acc := range auth.DefaultDemoAccounts() {
		u, err := acc.NewUser(bcrypt.MinCost)
		require.NoError(t, err)
		seeded = append(seeded, *u)
	}
	users := repository.NewMemoryUserRepository(seeded...)
	products := repository.NewMemoryProductRepository(repository.MockProducts()...)
	categories := repository.NewMemoryCategoryRepository(
		append(repository.MockCategories(), domain.Category{ID: "7", Name: "Sports", Status: domain.CategoryStatusActive})...,
	)

	uploadDir := t.TempDir()
	images, err := storage.NewImageStore(config.UploadConfig{Dir: uploadDir, MaxFiles: 5, MaxFileBytes: 1 << 20})
	require.NoError(t, err)

	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartCatalogWorker(dispatcher, worker.NewCatalogWorker(products, categories, logger))

	tokens := auth.NewTokenManager("router-test-secret", time.Hour)
	demo := auth.NewDemoDirectory(auth.DefaultDemoAccounts())
	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo: users, Tokens: tokens, Demo: demo, BcryptCost: bcrypt.MinCost, Logger: logger,
	})

	app := NewApp(AppConfig{Name: "shop-test", BodyLimit: 8 << 20}, logger)
	RegisterMiddlewares(app, logger, metrics, time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("shop-test", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(service.NewUserService(users)),
		Products:       handlers.NewProductsHandler(service.NewProductService(products, dispatcher, logger), images),
		Categories:     handlers.NewCategoriesHandler(service.NewCategoryService(categories)),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, demo, users, logger, metrics),
		Metrics:        metrics.Handler(),
		UploadDir:      uploadDir,
	})
	return &testServer{app: app, categories: categories, uploadDir: uploadDir}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return s.send(t, req)
}

func (s *testServer) send(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestProducts_PublicListAndFilters(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 6.0, body["count"])

	status, body = s.do(t, http.MethodGet, "/api/products?category=Sports&sort=price_asc", "", nil)
	require.Equal(t, http.StatusOK, status)
	products := body["products"].([]any)
	require.Len(t, products, 2)
	assert.Equal(t, "6", products[0].(map[string]any)["_id"])

	status, body = s.do(t, http.MethodGet, "/api/products?minPrice=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestProducts_NotFoundEnvelope(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/api/products/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"success": false, "code": "NOT_FOUND", "message": "Product not found"}, body)
}

func TestProducts_AdminGate(t *testing.T) {
	s := newTestServer(t)
	payload := map[string]any{"name": "Kettlebell", "description": "Cast iron", "price": 49.9, "category": "Sports"}

	status, body := s.do(t, http.MethodPost, "/api/products", "", payload)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Not authorized to access this route", body["message"])

	status, body = s.do(t, http.MethodPost, "/api/products", "Bearer garbage", payload)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Not authorized to access this route", body["message"])

	status, body = s.do(t, http.MethodPost, "/api/products", userToken, payload)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "User role user is not authorized to access this route", body["message"])

	status, body = s.do(t, http.MethodPost, "/api/products", adminToken, payload)
	require.Equal(t, http.StatusCreated, status)
	created := body["product"].(map[string]any)
	assert.Equal(t, "Kettlebell", created["name"])

	sports, err := s.categories.GetByName(context.Background(), "Sports")
	require.NoError(t, err)
	assert.Equal(t, 3, sports.ProductCount)

	id := created["_id"].(string)
	status, body = s.do(t, http.MethodPut, "/api/products/"+id, adminToken, map[string]any{"stock": 4})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4.0, body["product"].(map[string]any)["stock"])
	assert.Equal(t, "Kettlebell", body["product"].(map[string]any)["name"])

	status, body = s.do(t, http.MethodDelete, "/api/products/"+id, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Product deleted", body["message"])
}

func TestProducts_ValidationFailure(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodPost, "/api/products", adminToken, map[string]any{"name": "No price", "description": "x", "category": "Sports", "price": -5})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "price must be at least 0", body["message"])
}

func TestProducts_MultipartUpload(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "Foam Roller"))
	require.NoError(t, w.WriteField("description", "Recovery"))
	require.NoError(t, w.WriteField("price", "19.5"))
	require.NoError(t, w.WriteField("category", "Sports"))
	part, err := w.CreateFormFile("images", "roller.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", adminToken)

	status, body := s.send(t, req)
	require.Equal(t, http.StatusCreated, status, body)
	product := body["product"].(map[string]any)
	assert.Equal(t, 19.5, product["price"])
	images := product["images"].([]any)
	require.Len(t, images, 1)
	path := images[0].(string)
	assert.True(t, strings.HasPrefix(path, "/uploads/"))

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_RegisterLoginMe(t *testing.T) {
	s := newTestServer(t)
	creds := map[string]any{"name": "Ada", "email": "ada@example.com", "password": "secret1"}

	status, body := s.do(t, http.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, body["token"])
	assert.NotEmpty(t, body["expires_at"])
	assert.Equal(t, "user", body["user"].(map[string]any)["role"])

	status, body = s.do(t, http.MethodPost, "/api/auth/register", "", creds)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User already exists", body["message"])

	status, body = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ada@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, status)
	token := body["token"].(string)

	status, body = s.do(t, http.MethodGet, "/api/auth/me", "Bearer "+token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ada@example.com", body["user"].(map[string]any)["email"])
	_, leaked := body["user"].(map[string]any)["PasswordHash"]
	assert.False(t, leaked)

	status, body = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ada@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["message"])

	status, body = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ada@example.com"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please provide email and password", body["message"])
}

func TestAuth_DemoLogin(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "test@test.com", "password": "test123"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "demo_token_3", body["token"])
	_, hasExpiry := body["expires_at"]
	assert.False(t, hasExpiry)

	status, body = s.do(t, http.MethodGet, "/api/auth/me", "Bearer demo_token_3", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "demo3", body["user"].(map[string]any)["id"])
}

func TestUsers_ProfileAddressesFavorites(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/api/users/profile", userToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "user@liftpick.com", body["user"].(map[string]any)["email"])

	status, body = s.do(t, http.MethodPut, "/api/users/profile", userToken, map[string]any{"phone": "+90 555"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Test User", body["user"].(map[string]any)["name"])
	assert.Equal(t, "+90 555", body["user"].(map[string]any)["phone"])

	status, body = s.do(t, http.MethodPost, "/api/users/address", userToken, map[string]any{"title": "Home", "city": "Istanbul", "isDefault": true})
	require.Equal(t, http.StatusOK, status)
	addresses := body["user"].(map[string]any)["address"].([]any)
	require.Len(t, addresses, 1)
	addrID := addresses[0].(map[string]any)["_id"].(string)

	status, body = s.do(t, http.MethodPut, "/api/users/address/"+addrID, userToken, map[string]any{"district": "Kadikoy"})
	require.Equal(t, http.StatusOK, status)
	addr := body["user"].(map[string]any)["address"].([]any)[0].(map[string]any)
	assert.Equal(t, "Istanbul", addr["city"])
	assert.Equal(t, "Kadikoy", addr["district"])

	status, body = s.do(t, http.MethodPut, "/api/users/address/nope", userToken, map[string]any{"city": "x"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Address not found", body["message"])

	status, body = s.do(t, http.MethodDelete, "/api/users/address/"+addrID, userToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["user"].(map[string]any)["address"])

	s.do(t, http.MethodPost, "/api/users/favorites/1", userToken, nil)
	status, body = s.do(t, http.MethodPost, "/api/users/favorites/1", userToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"1"}, body["favorites"])

	status, body = s.do(t, http.MethodDelete, "/api/users/favorites/1", userToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["favorites"])

	status, _ = s.do(t, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestCategories_AdminLifecycle(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/api/categories?status=inactive", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1.0, body["count"])

	status, body = s.do(t, http.MethodPost, "/api/categories", adminToken, map[string]any{"name": "spor giyim"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Category already exists", body["message"])

	status, body = s.do(t, http.MethodPost, "/api/categories", adminToken, map[string]any{"name": "Outdoor", "description": "Camping gear"})
	require.Equal(t, http.StatusCreated, status)
	created := body["category"].(map[string]any)
	assert.Equal(t, "active", created["status"])
	assert.NotEmpty(t, created["color"])
	id := created["id"].(string)

	status, body = s.do(t, http.MethodPut, "/api/categories/"+id, adminToken, map[string]any{"status": "inactive"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Outdoor", body["category"].(map[string]any)["name"])

	status, body = s.do(t, http.MethodDelete, "/api/categories/"+id, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Category deleted successfully", body["message"])
	assert.Equal(t, id, body["category"].(map[string]any)["id"])

	status, body = s.do(t, http.MethodGet, "/api/categories/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Category not found", body["message"])
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"postgres": "disabled", "redis": "disabled"}, body["dependencies"])

	s.do(t, http.MethodGet, "/api/users/profile", "Bearer demo_token_99", nil)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `shop_test_auth_rejections_total{reason="invalid_token"} 1`)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["code"])
}
