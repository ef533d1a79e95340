package delivery

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/auth"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/health"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/middleware"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/repository"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/usecase"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/pkg/db"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := quietLogger()

	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	_, err = db.Seed(gdb, hasher.Hash)
	require.NoError(t, err)

	tokens := auth.NewTokenService("0123456789abcdef0123456789abcdef", "ProductCatalogAPI", "ProductCatalogClient", time.Hour)
	productRepo := repository.NewGormProductRepository(gdb, log)
	categoryRepo := repository.NewGormCategoryRepository(gdb, log)
	supplierRepo := repository.NewGormSupplierRepository(gdb, log)
	customerRepo := repository.NewGormCustomerRepository(gdb, log)
	employeeRepo := repository.NewGormEmployeeRepository(gdb, log)
	shipperRepo := repository.NewGormShipperRepository(gdb, log)
	checker, err := health.NewGormChecker(gdb, log)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Products:   usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo, log),
		Categories: usecase.NewCategoryUseCase(categoryRepo, log),
		Suppliers:  usecase.NewSupplierUseCase(supplierRepo, log),
		Auth:       usecase.NewAuthUseCase(repository.NewGormUserRepository(gdb, log), hasher, tokens, log),
		Orders: usecase.NewOrderUseCase(repository.NewGormOrderRepository(gdb, log), productRepo,
			customerRepo, employeeRepo, shipperRepo, log),
		References:     usecase.NewReferenceUseCase(customerRepo, employeeRepo, shipperRepo, log),
		Health:         checker,
		Guard:          middleware.NewAuthorizer(tokens, log),
		AllowedOrigins: []string{"http://localhost:5173"},
		Logger:         log,
	})
	return &testServer{router: router, db: gdb}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp usecase.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
