package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/internal/core/port"
)

// InventoryHandler serves the JSON API of the point of sale.
// Every session scoped route lives under /v1/sessions/{sid}.
type InventoryHandler struct {
	svc port.Inventory
	loc *time.Location
	now func() time.Time
}

func RegisterInventory(
	mux *http.ServeMux, svc port.Inventory, loc *time.Location,
) {
	if loc == nil {
		loc = time.UTC
	}
	h := InventoryHandler{svc: svc, loc: loc, now: time.Now}

	mux.HandleFunc("GET /v1/categories", h.GetCategories)

	mux.HandleFunc("POST /v1/sessions", h.PostSession)
	mux.HandleFunc("DELETE /v1/sessions/{sid}", h.DeleteSession)
	mux.HandleFunc("POST /v1/sessions/{sid}/reset", h.PostReset)

	mux.HandleFunc("GET /v1/sessions/{sid}/products", h.GetProducts)
	mux.HandleFunc("POST /v1/sessions/{sid}/products", h.PostProduct)
	mux.HandleFunc("PUT /v1/sessions/{sid}/products/{id}", h.PutProduct)
	mux.HandleFunc("DELETE /v1/sessions/{sid}/products/{id}", h.DeleteProduct)
	mux.HandleFunc("GET /v1/sessions/{sid}/products/low-stock", h.GetLowStock)

	mux.HandleFunc("GET /v1/sessions/{sid}/cart", h.GetCart)
	mux.HandleFunc("DELETE /v1/sessions/{sid}/cart", h.DeleteCart)
	mux.HandleFunc("POST /v1/sessions/{sid}/cart/items", h.PostCartItem)
	mux.HandleFunc("PUT /v1/sessions/{sid}/cart/items/{id}", h.PutCartItem)
	mux.HandleFunc("DELETE /v1/sessions/{sid}/cart/items/{id}", h.DeleteCartItem)

	mux.HandleFunc("POST /v1/sessions/{sid}/sales", h.PostSale)
	mux.HandleFunc("GET /v1/sessions/{sid}/sales", h.GetSales)
	mux.HandleFunc("DELETE /v1/sessions/{sid}/sales", h.DeleteSales)

	mux.HandleFunc("GET /v1/sessions/{sid}/dashboard", h.GetDashboard)

	mux.HandleFunc("GET /v1/sessions/{sid}/settings", h.GetSettings)
	mux.HandleFunc("PUT /v1/sessions/{sid}/settings", h.PutSettings)

	mux.HandleFunc("GET /v1/sessions/{sid}/export/products.csv", h.GetProductsCSV)
	mux.HandleFunc("GET /v1/sessions/{sid}/export/sales.csv", h.GetSalesCSV)
	mux.HandleFunc("GET /v1/sessions/{sid}/export/snapshot.avro", h.GetSnapshot)
	mux.HandleFunc("POST /v1/sessions/{sid}/import", h.PostImport)
}

func (h InventoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetCategories"

	cs := domain.Categories()
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = string(c)
	}
	writeJSON(w, op, http.StatusOK, res)
}

func (h InventoryHandler) PostSession(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.PostSession"

	sid, err := h.svc.OpenSession(r.Context())
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusCreated, Session{SessionID: sid})
}

func (h InventoryHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.DeleteSession"

	if err := h.svc.CloseSession(r.Context(), r.PathValue("sid")); err != nil {
		writeError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h InventoryHandler) PostReset(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.PostReset"

	if err := h.svc.ResetSession(r.Context(), r.PathValue("sid")); err != nil {
		writeError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var errInvalidJSON = errors.New("invalid JSON data")

// decodeJSON reads a single JSON value into v. Unknown fields are rejected.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(errInvalidJSON, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, op string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

// statusOf maps core errors to HTTP statuses.
func statusOf(err error) (int, error) {
	switch {
	case errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest, errInvalidJSON
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, domain.ErrSessionNotFound
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, domain.ErrProductNotFound
	case errors.Is(err, domain.ErrInvalidProduct):
		return http.StatusBadRequest, domain.ErrInvalidProduct
	case errors.Is(err, domain.ErrInvalidSettings):
		return http.StatusBadRequest, domain.ErrInvalidSettings
	case errors.Is(err, domain.ErrInvalidSnapshot):
		return http.StatusBadRequest, domain.ErrInvalidSnapshot
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusConflict, domain.ErrEmptyCart
	case errors.Is(err, domain.ErrOutOfStock):
		return http.StatusConflict, domain.ErrOutOfStock
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, domain.ErrInsufficientStock
	}
	return http.StatusInternalServerError, errors.New("internal error")
}

func writeError(w http.ResponseWriter, op string, err error) {
	log := slog.With("op", op)

	status, public := statusOf(err)
	body := Error{Error: public.Error()}

	switch {
	case status == http.StatusBadRequest:
		body.Details = err.Error()
		log.Warn("bad request", "err", err)
	case status >= http.StatusInternalServerError:
		log.Error("request failed", "err", err)
	default:
		log.Info("request rejected", "status", status, "err", err)
	}

	writeJSON(w, op, status, body)
}
