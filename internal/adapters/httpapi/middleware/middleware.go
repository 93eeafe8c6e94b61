package middleware

import (
	"net/http"
	"strings"

	accountPort "github.com/jonuar/Donacrypto/internal/ports/account"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth is the authentication gate: it resolves the caller's identity from the
// bearer token and, when asked, their role from the identity directory.
type Auth struct {
	Secret    []byte
	Blacklist accountPort.TokenBlacklist
	Directory accountPort.AccountRepository
	Logger    *zap.Logger
}

func NewAuth(secret []byte, blacklist accountPort.TokenBlacklist, directory accountPort.AccountRepository, logger *zap.Logger) *Auth {
	return &Auth{
		Secret:    secret,
		Blacklist: blacklist,
		Directory: directory,
		Logger:    logger,
	}
}

// JWTAuth validates the bearer token, rejects revoked tokens and sets userID
// in the gin context for downstream handlers.
func (a *Auth) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.Secret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if claims.Id != "" {
			revoked, err := a.Blacklist.IsRevoked(c.Request.Context(), claims.Id)
			if err != nil {
				a.Logger.Error("blacklist lookup failed", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not verify token"})
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
				return
			}
		}

		c.Set("userID", claims.Subject)
		c.Next()
	}
}

// OptionalJWT resolves userID when a valid token is present but lets
// anonymous requests through. Used by public reads that personalize output.
func (a *Auth) OptionalJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.Secret, nil
		})
		if err == nil && token.Valid && claims.Subject != "" {
			// a revoked token downgrades the request to anonymous instead of
			// failing the public read
			revoked := false
			if claims.Id != "" {
				revoked, err = a.Blacklist.IsRevoked(c.Request.Context(), claims.Id)
				if err != nil {
					a.Logger.Error("blacklist lookup failed", zap.Error(err))
					revoked = true
				}
			}
			if !revoked {
				c.Set("userID", claims.Subject)
			}
		}
		c.Next()
	}
}

// RequireRole loads the caller's account and enforces its role. Must run
// after JWTAuth.
func (a *Auth) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
			return
		}

		acc, err := a.Directory.FindByID(c.Request.Context(), userID.(string))
		if err != nil || acc.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
