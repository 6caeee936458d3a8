package handlers

import (
	"fmt"
	"io"
	"net/http"
	"petads/internal/models"
	"petads/internal/repository"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

type AdCreateResponse struct {
	Message string     `json:"message"`
	Ad      *models.Ad `json:"ad"`
}

func (h *Handlers) CreateAd(w http.ResponseWriter, r *http.Request) {
	// setting the size limit from the config
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		}
		return
	}

	userIDValue := r.FormValue("user_id")
	if userIDValue == "" {
		WriteError(w, "Отсутствует user_id", http.StatusBadRequest)
		return
	}

	userID, err := strconv.ParseInt(userIDValue, 10, 64)
	if err != nil {
		WriteError(w, "Неверный формат user_id", http.StatusBadRequest)
		return
	}

	// getting the file
	file, handler, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Отсутствует файл изображения", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// formats image
	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	contentType := handler.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateAdRequest{
		PetName:        r.FormValue("pet_name"),
		PetType:        r.FormValue("pet_type"),
		Location:       r.FormValue("location"),
		ContactDetails: r.FormValue("contact_details"),
		UserID:         userID,
	}

	ad, err := h.AdService.CreateAd(r.Context(), serviceReq, handler.Filename, file, handler.Size)
	if err != nil {
		WriteError(w, "Ошибка при создании объявления", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, AdCreateResponse{
		Message: "Ad posted successfully",
		Ad:      ad,
	}, http.StatusCreated)
}

func (h *Handlers) GetAds(w http.ResponseWriter, r *http.Request) {
	petType := r.URL.Query().Get("petType")

	ads, err := h.AdService.ListAds(r.Context(), petType)
	if err != nil {
		WriteError(w, "Ошибка при получении объявлений", http.StatusInternalServerError)
		return
	}

	if ads == nil {
		ads = []models.Ad{}
	}

	WriteJSON(w, ads, http.StatusOK)
}

func (h *Handlers) GetAdImage(w http.ResponseWriter, r *http.Request) {
	adID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный формат ID объявления", http.StatusBadRequest)
		return
	}

	image, contentType, size, err := h.AdService.GetAdImage(r.Context(), adID)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Объявление не найдено", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка при получении изображения", http.StatusInternalServerError)
		}
		return
	}
	defer image.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	io.Copy(w, image)
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	userIDValue := r.URL.Query().Get("user_id")
	if userIDValue == "" {
		WriteError(w, "Отсутствует user_id", http.StatusBadRequest)
		return
	}

	userID, err := strconv.ParseInt(userIDValue, 10, 64)
	if err != nil {
		WriteError(w, "Неверный формат user_id", http.StatusBadRequest)
		return
	}

	ads, err := h.AdService.ListAdsByOwner(r.Context(), userID)
	if err != nil {
		WriteError(w, "Ошибка при получении объявлений пользователя", http.StatusInternalServerError)
		return
	}

	if ads == nil {
		ads = []models.Ad{}
	}

	WriteJSON(w, ads, http.StatusOK)
}

func (h *Handlers) DeleteAd(w http.ResponseWriter, r *http.Request) {
	adID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный формат ID объявления", http.StatusBadRequest)
		return
	}

	if err := h.AdService.DeleteAd(r.Context(), adID); err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Объявление не найдено", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка при удалении объявления", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Ad deleted successfully"}, http.StatusOK)
}
