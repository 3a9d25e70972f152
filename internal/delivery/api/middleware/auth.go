package middleware

import (
	"log/slog"
	"strings"

	"txtchange/internal/delivery/api/response"
	deliverycontext "txtchange/internal/delivery/context"
	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const keyIdentity = "identity"

// AuthMiddleware resolves the bearer token to the acting identity.
type AuthMiddleware struct {
	provider service.AuthProvider
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(provider service.AuthProvider, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{provider: provider, logger: logger}
}

// Authenticate rejects requests without a valid bearer token. The identity is
// stored on the echo context and the request logger gains a user_id field.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.provider.VerifyToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(keyIdentity, *identity)

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", identity.UserID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// RequireVerified admits only identities whose email is verified.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireVerified(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
		}
		if !identity.EmailVerified {
			return response.HandleAppError(c, domainerrors.ErrEmailNotVerified)
		}

		return next(c)
	}
}

// GetIdentity returns the identity set by Authenticate.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(entity.Identity)

	return identity, ok
}

// GetUserID returns the id of the authenticated user.
func GetUserID(c echo.Context) (string, bool) {
	identity, ok := GetIdentity(c)
	if !ok || identity.UserID == "" {
		return "", false
	}

	return identity.UserID, true
}
