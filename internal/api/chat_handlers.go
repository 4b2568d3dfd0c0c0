package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"randevu/internal/db"
	httperrors "randevu/internal/errors"
	"randevu/internal/service"
)

// BusinessResolver turns a public slug into a business record. A (nil, nil)
// return means the slug is unknown.
type BusinessResolver interface {
	GetBusinessBySlug(slug string) (*db.Business, error)
}

type ChatHandler struct {
	Service  *service.ChatService
	Resolver BusinessResolver
}

func NewChatHandler(svc *service.ChatService, resolver BusinessResolver) *ChatHandler {
	return &ChatHandler{Service: svc, Resolver: resolver}
}

// HandleSlugMessage serves POST /api/{slug}/message.
func (h *ChatHandler) HandleSlugMessage(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	business, err := h.Resolver.GetBusinessBySlug(slug)
	if err != nil {
		writeError(w, httperrors.ErrInternal("İşletme sorgulanamadı."))
		return
	}
	if business == nil {
		writeError(w, httperrors.ErrNotFound(fmt.Sprintf("Business bulunamadı: %s", slug)))
		return
	}

	h.handleChat(w, r, business.ID)
}

// HandleDefaultChat serves POST /chat against the "default" business, kept
// for callers that predate slug routing.
func (h *ChatHandler) HandleDefaultChat(w http.ResponseWriter, r *http.Request) {
	business, err := h.Resolver.GetBusinessBySlug("default")
	if err != nil || business == nil {
		writeError(w, httperrors.ErrInternal("Default business bulunamadı. Lütfen businesses tablosunu kontrol edin."))
		return
	}

	h.handleChat(w, r, business.ID)
}

func (h *ChatHandler) handleChat(w http.ResponseWriter, r *http.Request, businessID string) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, httperrors.ErrBadRequest("Geçersiz istek gövdesi."))
		return
	}
	if req.Message == "" {
		writeError(w, httperrors.ErrBadRequest("message alanı gerekli."))
		return
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	reply, sess := h.Service.HandleMessage(r.Context(), req.UserID, req.Message, businessID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{Reply: reply, Session: sess})
}

// Health serves GET /.
func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{
		Success:   true,
		Message:   "Randevu Asistanı API çalışıyor!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeError(w http.ResponseWriter, httpErr *httperrors.HTTPError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	json.NewEncoder(w).Encode(map[string]string{"error": httpErr.Message})
}
