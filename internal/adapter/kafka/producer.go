package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/niksmo/inventory-pos/internal/adapter"
	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/pkg/retry"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

var defaultRetry = retry.RetryConfig{
	MaxAttempts: 3,
	Backoff:     retry.ExponentialBackoff(100 * time.Millisecond),
	ShouldRetry: isRetriable,
}

func isRetriable(err error) bool {
	return kerr.IsRetriable(err) || errors.Is(err, kgo.ErrRecordTimeout)
}

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
	retry    retry.RetryConfig
}

func newProducer(opPrefix string, cl ProducerClient) producer {
	return producer{opPrefix: opPrefix, cl: cl, retry: defaultRetry}
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "produce"
	err := retry.Do(ctx, p.retry, func() error {
		return p.cl.ProduceSync(ctx, rs...).FirstErr()
	})
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func applyOpts(op string, opts []ProducerOpt) (producerOpts, error) {
	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return producerOpts{}, opErr(err, op)
		}
	}
	return options, nil
}

// A SalesProducer used for produce [domain.Sale]
type SalesProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewSalesProducer(opts ...ProducerOpt) (SalesProducer, error) {
	const op = "NewSalesProducer"

	options, err := applyOpts(op, opts)
	if err != nil {
		return SalesProducer{}, err
	}

	opPrefix := "SalesProducer"
	return SalesProducer{
		producer: newProducer(opPrefix, options.cl),
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p SalesProducer) Close() {
	p.producer.close()
}

func (p SalesProducer) ProduceSale(ctx context.Context, v domain.Sale) error {
	const op = "ProduceSale"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	b, err := p.encoder.Encode(adapter.SaleToSchemaV1(v))
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r := &kgo.Record{Key: []byte(v.ID), Value: b}
	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// A LowStockProducer used for produce low stock alerts.
type LowStockProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewLowStockProducer(opts ...ProducerOpt) (LowStockProducer, error) {
	const op = "NewLowStockProducer"

	options, err := applyOpts(op, opts)
	if err != nil {
		return LowStockProducer{}, err
	}

	opPrefix := "LowStockProducer"
	return LowStockProducer{
		producer: newProducer(opPrefix, options.cl),
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p LowStockProducer) Close() {
	p.producer.close()
}

func (p LowStockProducer) ProduceLowStock(
	ctx context.Context, at time.Time, ps []domain.Product,
) error {
	const op = "ProduceLowStock"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	b, err := p.encoder.Encode(adapter.LowStockToSchemaV1(at, ps))
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	if err := p.producer.produce(ctx, &kgo.Record{Value: b}); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}
