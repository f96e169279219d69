package middleware

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/config"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AdminRole          = "admin"
	AdminSubjectLocal  = "admin_subject"
	adminTokenHeader   = "X-Admin-Token"
	defaultTokenExpiry = 24 * time.Hour
)

var (
	ErrMissingCredentials = errors.New("admin credentials missing")
	ErrInvalidCredentials = errors.New("invalid admin credentials")
)

// Authorizer decides whether a request may use the admin routes. It returns
// the subject to attach to the request on success.
type Authorizer interface {
	Authorize(c *fiber.Ctx) (string, error)
}

type AllowAll struct{}

func (AllowAll) Authorize(*fiber.Ctx) (string, error) {
	return "anonymous", nil
}

// StaticToken accepts a shared secret via "Authorization: Bearer" or X-Admin-Token.
type StaticToken struct {
	token []byte
}

func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: []byte(token)}
}

func (s *StaticToken) Authorize(c *fiber.Ctx) (string, error) {
	got := credential(c)
	if got == "" {
		return "", ErrMissingCredentials
	}
	if len(s.token) == 0 || subtle.ConstantTimeCompare([]byte(got), s.token) != 1 {
		return "", ErrInvalidCredentials
	}
	return "token", nil
}

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuthorizer accepts HS256 tokens whose role claim is "admin".
type JWTAuthorizer struct {
	secret []byte
}

func NewJWTAuthorizer(secret string) *JWTAuthorizer {
	return &JWTAuthorizer{secret: []byte(secret)}
}

func (a *JWTAuthorizer) Authorize(c *fiber.Ctx) (string, error) {
	raw := credential(c)
	if raw == "" {
		return "", ErrMissingCredentials
	}
	claims, err := a.Parse(raw)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if claims.Role != AdminRole {
		return "", ErrInvalidCredentials
	}
	return claims.Subject, nil
}

func (a *JWTAuthorizer) Parse(raw string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// IssueAdminToken signs an admin token for subject. A zero ttl means 24h.
func IssueAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenExpiry
	}
	now := time.Now()
	claims := &AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func NewAuthorizer(mode, token, secret string) (Authorizer, error) {
	switch mode {
	case config.AdminAuthNone:
		logger.Warn("Admin routes are not protected", "admin_auth_mode", mode)
		return AllowAll{}, nil
	case config.AdminAuthToken:
		if token == "" {
			return nil, errors.New("ADMIN_TOKEN is required for token admin auth")
		}
		return NewStaticToken(token), nil
	case config.AdminAuthJWT:
		if secret == "" {
			return nil, errors.New("JWT_SECRET is required for jwt admin auth")
		}
		return NewJWTAuthorizer(secret), nil
	default:
		return nil, fmt.Errorf("unknown admin auth mode %q", mode)
	}
}

// AdminAuth rejects requests the authorizer does not accept with 401.
func AdminAuth(a Authorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, err := a.Authorize(c)
		if err != nil {
			logger.Warn("Admin request rejected",
				"path", c.Path(),
				"ip", c.IP(),
				"reason", err.Error(),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		c.Locals(AdminSubjectLocal, subject)
		return c.Next()
	}
}

func credential(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Get(adminTokenHeader)); v != "" {
		return v
	}
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
