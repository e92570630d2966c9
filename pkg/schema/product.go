package schema

// productRecordV1 is embedded by the sale alert and snapshot schemas.
const productRecordV1 = `{
	"type": "record",
	"namespace": "inventory",
	"name": "Product",
	"fields": [
		{"name": "product_id", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "description", "type": "string"},
		{"name": "price", "type": "double"},
		{"name": "cost", "type": "double"},
		{"name": "stock", "type": "int"},
		{"name": "min_stock", "type": "int"},
		{"name": "category", "type": "string"}
	]
}`

type ProductV1 struct {
	ProductID   string  `avro:"product_id"`
	Name        string  `avro:"name"`
	Description string  `avro:"description"`
	Price       float64 `avro:"price"`
	Cost        float64 `avro:"cost"`
	Stock       int     `avro:"stock"`
	MinStock    int     `avro:"min_stock"`
	Category    string  `avro:"category"`
}
