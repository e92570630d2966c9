package httphandler

import "net/http"

func (h InventoryHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetSales"

	sales, stats, err := h.svc.SearchSales(
		r.Context(), r.PathValue("sid"), r.URL.Query().Get("q"),
	)
	if err != nil {
		writeError(w, op, err)
		return
	}

	page := SalesPage{
		Sales: make([]Sale, len(sales)),
		Stats: statsFromDomain(stats),
	}
	for i, s := range sales {
		page.Sales[i] = saleFromDomain(s, h.loc)
	}
	writeJSON(w, op, http.StatusOK, page)
}

func (h InventoryHandler) DeleteSales(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.DeleteSales"

	if err := h.svc.ClearHistory(r.Context(), r.PathValue("sid")); err != nil {
		writeError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h InventoryHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetDashboard"

	d, err := h.svc.Dashboard(r.Context(), r.PathValue("sid"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, dashboardFromDomain(d))
}

func (h InventoryHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetSettings"

	s, err := h.svc.Settings(r.Context(), r.PathValue("sid"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, settingsFromDomain(s))
}

func (h InventoryHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.PutSettings"

	var s Settings
	if err := decodeJSON(r, &s); err != nil {
		writeError(w, op, err)
		return
	}

	if err := h.svc.UpdateSettings(r.Context(), r.PathValue("sid"), s.toDomain()); err != nil {
		writeError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
