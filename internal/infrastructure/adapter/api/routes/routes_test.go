package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/logger"
	mockexternal "github.com/amirhossein-jamali/chess-escrow/mocks/port/external"
	mockusecase "github.com/amirhossein-jamali/chess-escrow/mocks/port/usecase"
)

func newRouter(t *testing.T, origins []string) (*gin.Engine, *mockexternal.MockAccountProvider, *mockusecase.MockLedgerUseCase) {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()
	accounts := mockexternal.NewMockAccountProvider(t)
	ledger := mockusecase.NewMockLedgerUseCase(t)

	router := gin.New()
	routes.SetupMiddlewares(router, log, origins)
	routes.SetupRoutes(router, routes.Handlers{
		Challenge: handler.NewChallengeHandler(mockusecase.NewMockEscrowUseCase(t), log, ""),
		Money:     handler.NewMoneyHandler(ledger, mockusecase.NewMockWithdrawalUseCase(t), log),
		User:      handler.NewUserHandler(ledger, log),
	}, accounts, log)
	return router, accounts, ledger
}

func TestHealthIsPublic(t *testing.T) {
	router, _, _ := newRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresAuthentication(t *testing.T) {
	router, _, _ := newRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/balance", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAuthenticatedBalance(t *testing.T) {
	router, accounts, ledger := newRouter(t, nil)
	alice := entity.Principal{Username: "alice", AccessToken: "tok"}
	accounts.EXPECT().Authenticate(mock.Anything, "tok").Return(alice, nil)
	ledger.EXPECT().GetBalance(mock.Anything, alice).Return(entity.Balance{Username: "alice", Amount: 10}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router, _, _ := newRouter(t, []string{"https://lightningchess.io"})

	req := httptest.NewRequest(http.MethodOptions, "/api/balance", nil)
	req.Header.Set("Origin", "https://lightningchess.io")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://lightningchess.io", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSConfig(t *testing.T) {
	open := routes.CORSConfig(nil)
	assert.True(t, open.AllowAllOrigins)
	assert.False(t, open.AllowCredentials)
	assert.NoError(t, open.Validate())

	restricted := routes.CORSConfig([]string{"https://lightningchess.io"})
	assert.False(t, restricted.AllowAllOrigins)
	assert.True(t, restricted.AllowCredentials)
	assert.NoError(t, restricted.Validate())
}
