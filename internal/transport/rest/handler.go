// Package rest provides HTTP handlers for grocery item operations.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	groceryerrors "github.com/abgdnv/grocerylist/internal/errors"
	"github.com/abgdnv/grocerylist/internal/metrics"
	"github.com/abgdnv/grocerylist/internal/service"
	"github.com/abgdnv/grocerylist/internal/store"
	"github.com/abgdnv/grocerylist/pkg/web"
)

// Response bodies are a fixed contract shared with existing clients; the
// handlers below must not change them.
const (
	msgInvalidInput  = "Invalid input"
	msgItemAdded     = "Item added successfully"
	msgItemUpdated   = "Item updated successfully"
	msgItemNotFound  = "Item not found"
	msgAddFailed     = "Failed to add item"
	msgUpdateFailed  = "Failed to update item"
	msgNotFoundRoute = "Not Found"
)

type Handler struct {
	service  service.ItemService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the grocery item API with the provided service.
func NewHandler(service service.ItemService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the grocery item service.
// Anything outside the three supported method+path combinations gets the
// fixed not-found body, including supported paths with unsupported methods.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	// Routes are registered flat so the mux-level NotFound/MethodNotAllowed
	// handlers cover unsupported methods on /items as well.
	r.Get("/items", h.List)
	r.Post("/items", h.Create)
	r.Put("/items", h.Update)

	r.Get("/healthz", h.HealthCheck)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)
}

// List retrieves all items and returns them as a raw JSON array.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request to list items")
	items, err := h.service.FindAll(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving item list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if items == nil {
		items = []store.Item{}
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved item list", "count", len(items))
	web.RespondJSON(w, mLogger, http.StatusOK, items)
}

// Create handles the creation of a new item.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var itemCreateDto service.ItemCreateDto
	if err := json.NewDecoder(r.Body).Decode(&itemCreateDto); err != nil {
		mLogger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondMessage(w, mLogger, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := h.validate.Struct(itemCreateDto); err != nil {
		mLogger.WarnContext(r.Context(), "Validation failed for create request", "error", err)
		web.RespondMessage(w, mLogger, http.StatusBadRequest, msgInvalidInput)
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to create item", "ID", *itemCreateDto.ItemID)
	if err := h.service.Create(r.Context(), itemCreateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating item", "ID", *itemCreateDto.ItemID, "error", err)
		web.RespondJSON(w, mLogger, http.StatusInternalServerError, map[string]string{
			"message": msgAddFailed,
			"error":   err.Error(),
		})
		return
	}
	metrics.ItemsCreated.Inc()
	mLogger.InfoContext(r.Context(), "Item created successfully", "ID", *itemCreateDto.ItemID, "Name", *itemCreateDto.Name)
	web.RespondMessage(w, mLogger, http.StatusCreated, msgItemAdded)
}

// Update resets the purchase state of the item matching the supplied name.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var itemUpdateDto service.ItemUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&itemUpdateDto); err != nil {
		mLogger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondMessage(w, mLogger, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := h.validate.Struct(itemUpdateDto); err != nil {
		mLogger.WarnContext(r.Context(), "Validation failed for update request", "error", err)
		web.RespondMessage(w, mLogger, http.StatusBadRequest, msgInvalidInput)
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to update item", "Name", *itemUpdateDto.Name)
	if err := h.service.ResetPurchased(r.Context(), *itemUpdateDto.Name); err != nil {
		if errors.Is(err, groceryerrors.ErrItemNotFound) {
			mLogger.WarnContext(r.Context(), "Item not found for update", "Name", *itemUpdateDto.Name)
			web.RespondMessage(w, mLogger, http.StatusNotFound, msgItemNotFound)
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating item", "Name", *itemUpdateDto.Name, "error", err)
		web.RespondJSON(w, mLogger, http.StatusInternalServerError, map[string]string{
			"message": msgUpdateFailed,
			"error":   err.Error(),
		})
		return
	}
	metrics.ItemsReset.Inc()
	mLogger.InfoContext(r.Context(), "Item updated successfully", "Name", *itemUpdateDto.Name)
	web.RespondMessage(w, mLogger, http.StatusOK, msgItemUpdated)
}

// NotFound is the handler for every unmatched method+path combination.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	web.RespondError(w, h.loggerWithReqID(r), http.StatusNotFound, msgNotFoundRoute)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
