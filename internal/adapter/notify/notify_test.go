package notify_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/niksmo/inventory-pos/internal/adapter/notify"
	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var res []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		res = append(res, m)
	}
	return res
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	sale := domain.Sale{
		ID:   "4",
		Date: time.Date(2025, time.January, 22, 0, 0, 0, 0, time.UTC),
		Lines: []domain.SaleLine{
			{ProductID: "2", Name: "Mouse Logitech MX", Quantity: 2, UnitPrice: 800},
		},
		Total: 1600,
	}
	require.NoError(t, n.NotifySale(t.Context(), sale))
	require.NoError(t, n.NotifyLowStock(t.Context(), []domain.Product{
		{ID: "2", Name: "Mouse Logitech MX", Stock: 1, MinStock: 10},
	}))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "new sale", lines[0]["msg"])
	assert.Equal(t, "4", lines[0]["saleID"])
	assert.Equal(t, 1600.0, lines[0]["total"])

	assert.Equal(t, "WARN", lines[1]["level"])
	assert.Equal(t, "2", lines[1]["productID"])
	assert.Equal(t, 1.0, lines[1]["stock"])
}
