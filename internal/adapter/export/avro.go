package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hamba/avro/v2/ocf"
	"github.com/niksmo/inventory-pos/internal/adapter"
	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/pkg/schema"
)

// WriteSnapshot writes snap as a single record Avro object container.
func WriteSnapshot(w io.Writer, snap domain.Snapshot, at time.Time) error {
	const op = "export.WriteSnapshot"

	enc, err := ocf.NewEncoderWithSchema(
		schema.SnapshotV1Avro(), w, ocf.WithCodec(ocf.Deflate),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	v := schema.SnapshotV1{
		ExportedAt: at,
		Products:   make([]schema.ProductV1, len(snap.Products)),
		Sales:      make([]schema.SaleV1, len(snap.Sales)),
	}
	for i, p := range snap.Products {
		v.Products[i] = adapter.ProductToSchemaV1(p)
	}
	for i, s := range snap.Sales {
		v.Sales[i] = adapter.SaleToSchemaV1(s)
	}

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ReadSnapshot reads the first snapshot record of an Avro object
// container written by [WriteSnapshot].
func ReadSnapshot(r io.Reader) (domain.Snapshot, error) {
	const op = "export.ReadSnapshot"

	dec, err := ocf.NewDecoder(r)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrInvalidSnapshot, err,
		)
	}

	if !dec.HasNext() {
		err := dec.Error()
		if err == nil {
			err = errors.New("no records")
		}
		return domain.Snapshot{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrInvalidSnapshot, err,
		)
	}

	var v schema.SnapshotV1
	if err := dec.Decode(&v); err != nil {
		return domain.Snapshot{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrInvalidSnapshot, err,
		)
	}

	snap := domain.Snapshot{
		Products: make([]domain.Product, len(v.Products)),
		Sales:    make([]domain.Sale, len(v.Sales)),
	}
	for i, p := range v.Products {
		snap.Products[i] = adapter.ProductFromSchemaV1(p)
	}
	for i, s := range v.Sales {
		snap.Sales[i] = adapter.SaleFromSchemaV1(s)
	}
	return snap, nil
}
