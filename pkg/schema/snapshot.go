package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

// SnapshotSchemaTextV1 is the schema of a whole exported data set.
const SnapshotSchemaTextV1 = `{
	"type": "record",
	"namespace": "inventory",
	"name": "Snapshot",
	"fields": [
		{"name": "exported_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "products", "type": {"type": "array", "items": ` + productRecordV1 + `}},
		{"name": "sales", "type": {"type": "array", "items": ` + SaleSchemaTextV1 + `}}
	]
}`

type SnapshotV1 struct {
	ExportedAt time.Time   `avro:"exported_at"`
	Products   []ProductV1 `avro:"products"`
	Sales      []SaleV1    `avro:"sales"`
}

func SnapshotV1Avro() avro.Schema {
	return avro.MustParse(SnapshotSchemaTextV1)
}
