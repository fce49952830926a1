// Package api provides HTTP handlers for the API.
package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordManager
	validator  *validator.Validate

	// db is used to wrap registration in a scoped transaction. Nil in
	// tests that exercise the handler against a fake store.
	db *sql.DB
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	db *sql.DB,
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordManager,
) *AuthHandler {
	return &AuthHandler{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		validator:  validator.New(),
		db:         db,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	// Normalize before validating: "A@X.com " identifies the same
	// account as "a@x.com" and must never bounce off the email tag.
	req.Email = domain.NormalizeEmail(req.Email)
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := domain.NewUser(req.Email, req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	if err := domain.ValidatePassword(req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid password: "+err.Error())
		return
	}
	user.HashedPassword, err = h.hasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	if err := h.createUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already registered")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	log.Info("user registered", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// createUser persists the user, inside a scoped transaction when the
// handler owns a database handle.
func (h *AuthHandler) createUser(ctx context.Context, user *domain.User) error {
	if h.db == nil {
		return h.userStore.Create(ctx, user)
	}
	return store.RunInTransaction(ctx, h.db, func(ctx context.Context, tx *sql.Tx) error {
		return h.userStore.WithTx(tx).Create(ctx, user)
	})
}

// Login handles POST /api/auth/login. Missing users and wrong passwords
// produce the same response, and the miss still pays for one bcrypt
// comparison so the two cases are not distinguishable by timing.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	req.Email = domain.NormalizeEmail(req.Email)
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = h.hasher.CompareDummy()
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	if err := h.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	log.Debug("user logged in", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.jwtService.Lifetime().Seconds()),
	})
}
