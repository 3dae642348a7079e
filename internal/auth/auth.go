package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"verbum-app/internal/config"
	"verbum-app/internal/logger"
	"verbum-app/internal/repository/db"
	"verbum-app/internal/repository/postgres"
	"verbum-app/pkg/validation"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// ClaimsContextKey carries the validated token claims through the request
const ClaimsContextKey contextKey = "claims"

// Claims mirrors the shape of the hosted identity provider's session token:
// a subject plus an admin-role claim.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Auth issues and validates session tokens against the local user store
type Auth struct {
	users     db.UserStore
	config    config.AuthConfig
	validator *validation.AuthRequestValidator
}

// NewAuth creates a new Auth with injected configuration
func NewAuth(users db.UserStore, authConfig config.AuthConfig) *Auth {
	return &Auth{
		users:     users,
		config:    authConfig,
		validator: validation.NewAuthRequestValidator(),
	}
}

// sendError sends a JSON error envelope
func sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// GenerateToken issues a signed token for the user
func (a *Auth) GenerateToken(username string, isAdmin bool) (string, error) {
	claims := Claims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.config.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.config.JWTSecret)
}

// ValidateToken parses and validates a signed token
func (a *Auth) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.config.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// LoginHandler authenticates a user and returns a token
func (a *Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.ValidateLoginRequest(req.Username, req.Password); err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.users.GetUserByUsername(req.Username)
	if err != nil || !postgres.VerifyPassword(user, req.Password) {
		sendError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := a.GenerateToken(user.Username, user.IsAdmin)
	if err != nil {
		logger.Log.WithError(err).Error("Error generating token")
		sendError(w, http.StatusInternalServerError, "error generating token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{Token: token})
}

// RegisterHandler creates a new user and returns a token
func (a *Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.ValidateRegisterRequest(req.Username, req.Email, req.Password); err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.users.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		if err.Error() == "username already exists" {
			sendError(w, http.StatusConflict, "username already exists")
			return
		}
		logger.Log.WithError(err).Error("Error creating user")
		sendError(w, http.StatusInternalServerError, "error creating user")
		return
	}

	token, err := a.GenerateToken(user.Username, user.IsAdmin)
	if err != nil {
		logger.Log.WithError(err).Error("Error generating token")
		sendError(w, http.StatusInternalServerError, "error generating token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RegisterResponse{
		Message: "user created successfully",
		Token:   token,
	})
}

// Middleware validates the bearer token and stores the claims in context
func (a *Auth) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			sendError(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			sendError(w, http.StatusUnauthorized, "bearer token required")
			return
		}

		claims, err := a.ValidateToken(tokenString)
		if err != nil {
			sendError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// AdminOnly requires a validated token carrying the admin-role claim
func (a *Auth) AdminOnly(next http.HandlerFunc) http.HandlerFunc {
	return a.Middleware(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || !claims.IsAdmin {
			sendError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the claims stored by the middleware, if any
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(ClaimsContextKey).(*Claims)
	return claims
}
