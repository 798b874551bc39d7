package repository

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"posada/infras/jsonstore"
	"posada/infras/otel"
	"posada/shared/constant"
)

// Record is any flat entity with self-contained invariants.
type Record interface {
	Validate() error
}

// Collection is a full-collection repository over a jsonstore file: every read
// decodes the entire persisted list and every write rewrites it. Rows that fail
// to decode or violate their invariants are skipped on load with a diagnostic,
// so one corrupt row never poisons the rest of the collection.
type Collection[T Record] struct {
	entity string
	store  *jsonstore.Store
	otel   otel.Otel
}

func NewCollection[T Record](entity string, store *jsonstore.Store, ot otel.Otel) *Collection[T] {
	return &Collection[T]{
		entity: entity,
		store:  store,
		otel:   ot,
	}
}

// LoadAll decodes every persisted row, keeping only valid ones in order.
func (c *Collection[T]) LoadAll(ctx context.Context) []T {
	_, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, c.entity+".LoadAll")
	defer scope.End()

	raws := c.store.Load()

	records := make([]T, 0, len(raws))
	for idx, raw := range raws {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			log.Error().Err(err).Int("index", idx).Str("entity", c.entity).Msg("Invalid record, skipped")

			continue
		}

		if err := record.Validate(); err != nil {
			log.Error().Err(err).Int("index", idx).Str("entity", c.entity).Msg("Invalid record, skipped")

			continue
		}

		records = append(records, record)
	}

	return records
}

// SaveAll overwrites the persisted collection with the given records.
func (c *Collection[T]) SaveAll(ctx context.Context, records []T) (err error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, c.entity+".SaveAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if records == nil {
		// keep the persisted root a list, never null
		records = []T{}
	}

	return c.store.Save(records)
}
