package schema

import (
	"context"
	"errors"

	"github.com/twmb/franz-go/pkg/sr"
)

// A SchemaIdentifier resolves the registry id of the schema text
// under the subject.
type SchemaIdentifier interface {
	DetermineID(ctx context.Context, subject, schemaText string) (int, error)
}

type schemaCreater struct {
	cl *sr.Client
}

// NewSchemaCreater returns a [SchemaIdentifier] that registers the
// schema when the subject does not know it yet.
func NewSchemaCreater(cl *sr.Client) SchemaIdentifier {
	if cl == nil {
		panic(errors.New("schema.NewSchemaCreater: client is nil")) // develop mistake
	}
	return schemaCreater{cl}
}

func (c schemaCreater) DetermineID(
	ctx context.Context, subject, schemaText string,
) (int, error) {
	ss, err := c.cl.CreateSchema(
		ctx, subject, sr.Schema{Type: sr.TypeAvro, Schema: schemaText},
	)
	if err != nil {
		return 0, err
	}
	return ss.ID, nil
}
