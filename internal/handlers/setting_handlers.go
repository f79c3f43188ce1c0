package handlers

import (
	"encoding/json"
	"net/http"

	"kanbanTracker/internal/handlers/dto"
	"kanbanTracker/internal/logger"
	"kanbanTracker/internal/middleware"
	"kanbanTracker/internal/service"

	"go.uber.org/zap"
)

type SettingHandler struct {
	UserService UserService
}

func NewSettingHandler(userService UserService) *SettingHandler {
	return &SettingHandler{
		UserService: userService,
	}
}

func (h *SettingHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		responseWithError(w, http.StatusUnauthorized, "error.not_authenticated")
		return
	}

	setting, err := h.UserService.GetSettings(r.Context(), userID)
	if err != nil {
		respondServiceError(w, "get_settings", err)
		return
	}

	responseWithBody(w, http.StatusOK, dto.FromSetting(setting))
}

func (h *SettingHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		responseWithError(w, http.StatusUnauthorized, "error.not_authenticated")
		return
	}

	var request dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	setting, err := h.UserService.UpdateSettings(r.Context(), userID, service.UpdateSettingsInput{
		Language: request.Language,
		Theme:    request.Theme,
	})
	if err != nil {
		respondServiceError(w, "update_settings", err)
		return
	}

	logger.Info("HTTP_OUT: Настройки обновлены",
		zap.String("user_id", userID.String()))

	responseWithBody(w, http.StatusOK, dto.FromSetting(setting))
}
