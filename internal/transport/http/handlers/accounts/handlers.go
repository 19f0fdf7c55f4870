package accountshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sitecrew/internal/auth"
	"sitecrew/internal/domain/accounts"
	"sitecrew/internal/transport/http/api"
)

const tokenTTL = 8 * time.Hour

type Handler struct {
	Service   *accounts.Service
	JWTSecret string
}

func NewHandler(service *accounts.Service, jwtSecret string) *Handler {
	return &Handler{Service: service, JWTSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Get("/register", h.handleGetAccounts)
	r.Post("/login", h.handleLogin)
	r.Route("/userLink", func(r chi.Router) {
		r.Get("/", h.handleListLinks)
		r.Post("/", h.handleCreateLink)
	})
}

type registerPayload struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	EmployeeID string `json:"employeeId"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	acc, err := h.Service.Register(r.Context(), accounts.RegisterInput{
		Name:       payload.Name,
		Username:   payload.Username,
		Email:      payload.Email,
		Password:   payload.Password,
		Phone:      payload.Phone,
		EmployeeID: payload.EmployeeID,
	})
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusCreated, acc)
}

func (h *Handler) handleGetAccounts(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username != "" {
		acc, err := h.Service.FindByUsername(r.Context(), username)
		if err != nil {
			if errors.Is(err, accounts.ErrNotFound) {
				api.Error(w, http.StatusNotFound, "User not found")
				return
			}
			api.InternalError(w)
			return
		}
		api.JSON(w, http.StatusOK, acc)
		return
	}

	all, err := h.Service.ListAccounts(r.Context())
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, all)
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token,omitempty"`
	User    accounts.Profile `json:"user"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	acc, err := h.Service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrNotFound):
			api.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, accounts.ErrInvalidCredentials):
			api.Error(w, http.StatusBadRequest, "Invalid password")
		default:
			api.InternalError(w)
		}
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{UserID: acc.ID, Username: acc.Username}, tokenTTL)
	if err != nil {
		api.InternalError(w)
		return
	}

	api.JSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    accounts.Profile{Username: acc.Username},
	})
}

func (h *Handler) handleListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.Service.ListLinks(r.Context())
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, links)
}

type linkPayload struct {
	UserID     string `json:"userId"`
	EmployeeID string `json:"employeeId"`
}

func (h *Handler) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	var payload linkPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.UserID == "" || payload.EmployeeID == "" {
		api.Error(w, http.StatusBadRequest, "userId and employeeId are required")
		return
	}

	link, err := h.Service.CreateLink(r.Context(), accounts.UserEmployeeLink{
		UserID:     payload.UserID,
		EmployeeID: payload.EmployeeID,
	})
	if err != nil {
		api.InternalError(w)
		return
	}
	api.JSON(w, http.StatusOK, link)
}
