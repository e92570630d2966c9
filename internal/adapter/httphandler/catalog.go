package httphandler

import "net/http"

func (h InventoryHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetProducts"

	ps, err := h.svc.SearchProducts(
		r.Context(), r.PathValue("sid"), r.URL.Query().Get("q"),
	)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, productsFromDomain(ps))
}

func (h InventoryHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.PostProduct"

	var d ProductDraft
	if err := decodeJSON(r, &d); err != nil {
		writeError(w, op, err)
		return
	}

	p, err := h.svc.AddProduct(r.Context(), r.PathValue("sid"), d.toDomain())
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusCreated, productFromDomain(p))
}

func (h InventoryHandler) PutProduct(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.PutProduct"

	var d ProductDraft
	if err := decodeJSON(r, &d); err != nil {
		writeError(w, op, err)
		return
	}

	err := h.svc.EditProduct(
		r.Context(), r.PathValue("sid"), r.PathValue("id"), d.toDomain(),
	)
	if err != nil {
		writeError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h InventoryHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.DeleteProduct"

	err := h.svc.RemoveProduct(r.Context(), r.PathValue("sid"), r.PathValue("id"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h InventoryHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetLowStock"

	ps, err := h.svc.LowStock(r.Context(), r.PathValue("sid"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, productsFromDomain(ps))
}
