package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const saleLineRecordV1 = `{
	"type": "record",
	"namespace": "inventory",
	"name": "SaleLine",
	"fields": [
		{"name": "product_id", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "quantity", "type": "int"},
		{"name": "unit_price", "type": "double"}
	]
}`

const SaleSchemaTextV1 = `{
	"type": "record",
	"namespace": "inventory",
	"name": "Sale",
	"fields": [
		{"name": "sale_id", "type": "string"},
		{"name": "date", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "lines", "type": {"type": "array", "items": ` + saleLineRecordV1 + `}},
		{"name": "total", "type": "double"}
	]
}`

const LowStockAlertSchemaTextV1 = `{
	"type": "record",
	"namespace": "inventory",
	"name": "LowStockAlert",
	"fields": [
		{"name": "raised_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "products", "type": {"type": "array", "items": ` + productRecordV1 + `}}
	]
}`

type (
	SaleV1 struct {
		SaleID string       `avro:"sale_id"`
		Date   time.Time    `avro:"date"`
		Lines  []SaleLineV1 `avro:"lines"`
		Total  float64      `avro:"total"`
	}

	SaleLineV1 struct {
		ProductID string  `avro:"product_id"`
		Name      string  `avro:"name"`
		Quantity  int     `avro:"quantity"`
		UnitPrice float64 `avro:"unit_price"`
	}

	// A LowStockAlertV1 lists the products that reached their minimum
	// stock after a sale.
	LowStockAlertV1 struct {
		RaisedAt time.Time   `avro:"raised_at"`
		Products []ProductV1 `avro:"products"`
	}
)

func SaleV1Avro() avro.Schema {
	return avro.MustParse(SaleSchemaTextV1)
}

func LowStockAlertV1Avro() avro.Schema {
	return avro.MustParse(LowStockAlertSchemaTextV1)
}
