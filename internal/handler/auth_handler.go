package handlers

import (
	"encoding/json"
	"net/http"
	"petads/internal/repository"
	"strings"
)

type RegisterRequest struct {
	Name         string `json:"name" validate:"required"`
	MobileNumber string `json:"mobile_number" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// required fields
	if req.Name == "" || req.MobileNumber == "" || req.Password == "" {
		WriteError(w, "Отсутствуют обязательные поля: name, mobile_number, password", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateUserRequest{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Password:     req.Password,
	}

	// registering a user in the service
	user, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		WriteError(w, "Ошибка при регистрации пользователя", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, AuthResponse{
		Message: "Registration successful",
		UserID:  user.ID,
	}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MobileNumber string `json:"mobile_number" validate:"required"`
		Password     string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствуют обязательные поля: mobile_number, password", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.MobileNumber, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Пользователь не найден", http.StatusBadRequest)
		} else if strings.Contains(err.Error(), "неверный пароль") {
			WriteError(w, "Неверный пароль", http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при входе", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, AuthResponse{
		Message: "Login successful",
		UserID:  user.ID,
	}, http.StatusOK)
}
