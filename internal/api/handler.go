package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"maintenance-planner-backend/internal/notification"
	"maintenance-planner-backend/internal/planner"
	"maintenance-planner-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	planner  *planner.Service
	notifier *notification.WorkerPool
	webpush  *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, p *planner.Service, notifier *notification.WorkerPool, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:    s,
		planner:  p,
		notifier: notifier,
		webpush:  webpushOptions,
	}
}
