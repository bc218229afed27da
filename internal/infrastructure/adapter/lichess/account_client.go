package lichess

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/external"
)

// Default cache settings for verified tokens
const (
	DefaultAuthCacheSize = 1024
	DefaultAuthCacheTTL  = time.Minute
)

type account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AccountClient resolves access tokens to principals. Verified tokens are
// cached for a short time, keyed by their hash.
type AccountClient struct {
	*api
	cache *expirable.LRU[string, entity.Principal]
}

var _ external.AccountProvider = (*AccountClient)(nil)

// NewAccountClient creates an account client
func NewAccountClient(config Config, logger coreport.Logger) *AccountClient {
	size := config.AuthCacheSize
	if size <= 0 {
		size = DefaultAuthCacheSize
	}
	ttl := config.AuthCacheTTL
	if ttl <= 0 {
		ttl = DefaultAuthCacheTTL
	}

	return &AccountClient{
		api:   newAPI(config, logger),
		cache: expirable.NewLRU[string, entity.Principal](size, nil, ttl),
	}
}

// Authenticate returns the principal owning accessToken
func (c *AccountClient) Authenticate(ctx context.Context, accessToken string) (entity.Principal, error) {
	if accessToken == "" {
		return entity.Principal{}, errs.ErrUnauthenticated
	}

	key := tokenKey(accessToken)
	if principal, ok := c.cache.Get(key); ok {
		return principal, nil
	}

	var acct account
	err := c.retry(ctx, "get_account", func() error {
		return c.do(ctx, http.MethodGet, "/api/account", accessToken, nil, &acct)
	})

	var httpErr *httpError
	if errors.As(err, &httpErr) && (httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden) {
		return entity.Principal{}, errs.ErrUnauthenticated
	}
	if err != nil {
		return entity.Principal{}, errs.NewExternalServiceError(ServiceName, "get_account", err)
	}

	username := acct.Username
	if username == "" {
		username = acct.ID
	}
	principal, err := entity.NewPrincipal(username, accessToken)
	if err != nil {
		c.logger.Warn("Account service returned an unusable username", map[string]any{"error": err.Error()})
		return entity.Principal{}, errs.ErrUnauthenticated
	}

	c.cache.Add(key, principal)
	return principal, nil
}

// Forget drops a cached token, e.g. after logout
func (c *AccountClient) Forget(accessToken string) {
	c.cache.Remove(tokenKey(accessToken))
}

func tokenKey(accessToken string) string {
	sum := sha256.Sum256([]byte(accessToken))
	return hex.EncodeToString(sum[:])
}
