package httphandler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/niksmo/inventory-pos/internal/adapter/export"
)

const maxImportSize = 32 << 20

func (h InventoryHandler) GetProductsCSV(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetProductsCSV"

	ps, err := h.svc.SearchProducts(r.Context(), r.PathValue("sid"), "")
	if err != nil {
		writeError(w, op, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteProductsCSV(&buf, ps); err != nil {
		writeError(w, op, err)
		return
	}
	writeFile(w, op, "text/csv; charset=utf-8", "productos.csv", buf.Bytes())
}

func (h InventoryHandler) GetSalesCSV(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetSalesCSV"

	snap, err := h.svc.Snapshot(r.Context(), r.PathValue("sid"))
	if err != nil {
		writeError(w, op, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSalesCSV(&buf, snap.Sales, h.loc); err != nil {
		writeError(w, op, err)
		return
	}
	writeFile(w, op, "text/csv; charset=utf-8", "ventas.csv", buf.Bytes())
}

func (h InventoryHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetSnapshot"

	snap, err := h.svc.Snapshot(r.Context(), r.PathValue("sid"))
	if err != nil {
		writeError(w, op, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSnapshot(&buf, snap, h.now()); err != nil {
		writeError(w, op, err)
		return
	}
	writeFile(w, op, "application/avro", "inventario.avro", buf.Bytes())
}

// PostImport replaces the session data with an uploaded snapshot.
func (h InventoryHandler) PostImport(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.PostImport"
	log := slog.With("op", op)

	snap, err := export.ReadSnapshot(http.MaxBytesReader(w, r.Body, maxImportSize))
	if err != nil {
		writeError(w, op, err)
		return
	}

	if err := h.svc.Restore(r.Context(), r.PathValue("sid"), snap); err != nil {
		writeError(w, op, err)
		return
	}

	log.Info("snapshot imported",
		"nProducts", len(snap.Products), "nSales", len(snap.Sales),
	)
	w.WriteHeader(http.StatusNoContent)
}

func writeFile(
	w http.ResponseWriter, op, contentType, name string, data []byte,
) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set(
		"Content-Disposition", fmt.Sprintf("attachment; filename=%q", name),
	)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}
