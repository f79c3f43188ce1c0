package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"kanbanTracker/internal/handlers/dto"
	"kanbanTracker/internal/logger"
	"kanbanTracker/internal/middleware"
	"kanbanTracker/internal/service"

	"go.uber.org/zap"
)

type AuthHandler struct {
	UserService UserService
}

func NewAuthHandler(userService UserService) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var request dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	u, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Role:     request.Role,
	})
	if err != nil {
		respondServiceError(w, "register", err)
		return
	}

	logger.Info("HTTP_OUT: Пользователь зарегистрирован",
		zap.String("user_id", u.ID.String()),
		zap.Duration("ms", time.Since(start)))

	responseWithBody(w, http.StatusCreated, dto.FromUser(u))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var request dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	token, u, err := h.UserService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		respondServiceError(w, "login", err)
		return
	}

	logger.Info("HTTP_OUT: Успешный вход",
		zap.String("user_id", u.ID.String()),
		zap.Duration("ms", time.Since(start)))

	responseWithBody(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.FromUser(u),
	})
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		responseWithError(w, http.StatusUnauthorized, "error.not_authenticated")
		return
	}

	u, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, "get_profile", err)
		return
	}

	responseWithBody(w, http.StatusOK, dto.FromUser(u))
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		responseWithError(w, http.StatusUnauthorized, "error.not_authenticated")
		return
	}

	var request dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	u, err := h.UserService.UpdateProfile(r.Context(), userID, service.UpdateProfileInput{
		Name:  request.Name,
		Email: request.Email,
	})
	if err != nil {
		respondServiceError(w, "update_profile", err)
		return
	}

	logger.Info("HTTP_OUT: Профиль обновлён",
		zap.String("user_id", userID.String()))

	responseWithBody(w, http.StatusOK, dto.FromUser(u))
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		responseWithError(w, http.StatusUnauthorized, "error.not_authenticated")
		return
	}

	var request dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), userID, request.CurrentPassword, request.NewPassword); err != nil {
		respondServiceError(w, "change_password", err)
		return
	}

	logger.Info("HTTP_OUT: Пароль изменён",
		zap.String("user_id", userID.String()))

	responseWithJSON(w, http.StatusOK, toPayload("message", "password.changed"))
}
