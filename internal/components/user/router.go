package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

type (
	Router struct {
		service servicer
	}

	registerResponse struct {
		Status string       `json:"status"`
		Data   *RegisterOut `json:"data"`
	}

	tokenResponse struct {
		Token string `json:"token"`
	}

	errorsResponse struct {
		Errors []string `json:"errors"`
	}

	messageResponse struct {
		Message string `json:"message"`
	}
)

func NewRouter(service servicer) chi.Router {
	router := &Router{service: service}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/register", r.Register)
	router.Post("/login", r.Login)
	return router
}

func (r *Router) Register(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body CredentialsIn
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		logger.Warn().Err(err).Msg("Failed to decode register request")
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: []string{"Invalid request body"}})
		return
	}

	out, err := r.service.Register(ctx, body)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			logger.Debug().Strs("errors", vErr.Errors).Msg("Register validation failed")
			writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: vErr.Errors})
		case errors.Is(err, ErrUserExists):
			logger.Debug().Str("username", body.Username).Msg("Register rejected: username taken")
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "User already exists!"})
		default:
			logger.Error().Err(err).Msg("Error creating user")
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Failed to create the user"})
		}
		return
	}

	logger.Debug().Str("username", out.Username).Str("user_id", out.ID.String()).Msg("User registered")
	writeJSON(w, http.StatusCreated, registerResponse{Status: "success", Data: out})
}

func (r *Router) Login(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body CredentialsIn
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		logger.Warn().Err(err).Msg("Failed to decode login request")
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: []string{"Invalid request body"}})
		return
	}

	token, err := r.service.Login(ctx, body)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			logger.Debug().Strs("errors", vErr.Errors).Msg("Login validation failed")
			writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: vErr.Errors})
		case errors.Is(err, ErrUserNotFound):
			logger.Warn().Str("username", body.Username).Msg("Login failed: user not found")
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "User not found"})
		case errors.Is(err, ErrInvalidCredentials):
			logger.Warn().Str("username", body.Username).Msg("Login failed: invalid credentials")
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Incorrect Email or password!"})
		default:
			logger.Error().Err(err).Msg("Error logging in")
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
		}
		return
	}

	logger.Debug().Str("username", body.Username).Msg("Login successful")
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
