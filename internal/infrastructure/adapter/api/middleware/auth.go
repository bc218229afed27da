package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/api/dto"
)

// AccessTokenCookie is the cookie holding the game service token
const AccessTokenCookie = "access_token"

const principalKey = "principal"

// Auth resolves the caller's token to a principal. The token is read from the
// Authorization header first and the access_token cookie second.
func Auth(accounts external.AccountProvider, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				token = cookie
			}
		}
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		principal, err := accounts.Authenticate(c.Request.Context(), token)
		if err != nil {
			if domainerr.ErrorCode(err) == domainerr.CodeUnauthenticated {
				abortUnauthenticated(c)
				return
			}
			logger.Error("Account lookup failed", map[string]any{
				"error":      err.Error(),
				"request_id": RequestIDFrom(c),
			})
			c.AbortWithStatusJSON(http.StatusBadGateway, dto.ErrorResponse{
				Code:      domainerr.ErrorCode(err),
				Message:   "Account service unavailable",
				RequestID: RequestIDFrom(c),
			})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by Auth
func PrincipalFrom(c *gin.Context) (entity.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return entity.Principal{}, false
	}
	principal, ok := value.(entity.Principal)
	return principal, ok
}

// SetPrincipal stores a principal on the context, for handlers mounted without Auth
func SetPrincipal(c *gin.Context, principal entity.Principal) {
	c.Set(principalKey, principal)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:      domainerr.CodeUnauthenticated,
		Message:   "Authentication required",
		RequestID: RequestIDFrom(c),
	})
}
