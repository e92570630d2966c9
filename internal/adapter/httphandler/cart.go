package httphandler

import (
	"log/slog"
	"net/http"
)

func (h InventoryHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetCart"

	v, err := h.svc.Cart(r.Context(), r.PathValue("sid"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, cartFromPort(v))
}

func (h InventoryHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.DeleteCart"

	v, err := h.svc.ClearCart(r.Context(), r.PathValue("sid"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, cartFromPort(v))
}

func (h InventoryHandler) PostCartItem(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.PostCartItem"

	var req AddCartItem
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, op, err)
		return
	}

	v, err := h.svc.AddToCart(r.Context(), r.PathValue("sid"), req.ProductID)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, cartFromPort(v))
}

func (h InventoryHandler) PutCartItem(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.PutCartItem"

	var req CartQuantity
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, op, err)
		return
	}

	v, err := h.svc.SetCartQuantity(
		r.Context(), r.PathValue("sid"), r.PathValue("id"), req.Quantity,
	)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, cartFromPort(v))
}

func (h InventoryHandler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.DeleteCartItem"

	v, err := h.svc.RemoveFromCart(
		r.Context(), r.PathValue("sid"), r.PathValue("id"),
	)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, cartFromPort(v))
}

func (h InventoryHandler) PostSale(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.PostSale"

	s, err := h.svc.CompleteSale(r.Context(), r.PathValue("sid"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusCreated, saleFromDomain(s, h.loc))
	slog.Debug("sale accepted", "op", op, "saleID", s.ID)
}
