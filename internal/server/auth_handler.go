// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	jwtConfig   *config.JWTConfig
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService, jwtConfig *config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		jwtConfig:   jwtConfig,
		validator:   validator.New(),
	}
}

// setSessionCookie attaches the HTTP-only session cookie to the response.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.jwtConfig.CookieMaxAge(),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie expires the session cookie.
func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func authJSON(w http.ResponseWriter, status int, resp types.AuthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func authError(w http.ResponseWriter, status int, message string) {
	authJSON(w, status, types.AuthResponse{Success: false, Message: message})
}

// extractValidationErrors renders validator errors as one readable line.
func extractValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request"
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, "All fields are required")
		case "email":
			messages = append(messages, "Invalid email address")
		case "min":
			messages = append(messages, "Password must be at least 6 characters")
		default:
			messages = append(messages, fieldErr.Field()+" is invalid")
		}
	}
	return strings.Join(messages, "; ")
}

// Signup handles account creation requests.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		authError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := h.userService.Signup(r.Context(), &req)
	if err != nil {
		authError(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		authError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	h.setSessionCookie(w, token)
	authJSON(w, http.StatusCreated, types.AuthResponse{
		Success: true,
		Message: "Account created successfully",
		User:    user,
		Token:   token,
	})
}

// Signin handles login requests.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req types.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		authError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := h.userService.Signin(r.Context(), &req)
	if err != nil {
		authError(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		authError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	h.setSessionCookie(w, token)
	authJSON(w, http.StatusOK, types.AuthResponse{
		Success: true,
		Message: "Signed in successfully",
		User:    user,
		Token:   token,
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		authError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		authError(w, HTTPStatus(err), err.Error())
		return
	}

	authJSON(w, http.StatusOK, types.AuthResponse{
		Success: true,
		User:    user,
	})
}

// Signout clears the session cookie. The token itself stays valid until it
// expires; the server keeps no session state.
func (h *AuthHandler) Signout(w http.ResponseWriter, _ *http.Request) {
	h.clearSessionCookie(w)
	authJSON(w, http.StatusOK, types.AuthResponse{
		Success: true,
		Message: "Signed out successfully",
	})
}
