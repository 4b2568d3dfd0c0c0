package api

import "randevu/internal/session"

// Chat
type ChatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply   string          `json:"reply"`
	Session session.Session `json:"session"`
}

// Health
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
