package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posada/infras/jsonstore"
	"posada/infras/otel/mocks"
	"posada/shared/failure"
	"posada/shared/repository"
)

type guest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (g guest) Validate() error {
	if g.ID == "" {
		return failure.Validation("id must not be empty")
	}

	return nil
}

func TestCollection_SaveAllThenLoadAll(t *testing.T) {
	store := jsonstore.New(filepath.Join(t.TempDir(), "guests.json"))
	coll := repository.NewCollection[guest]("guest", store, mocks.NewOtel())

	ctx := context.Background()

	err := coll.SaveAll(ctx, []guest{{ID: "g1", Name: "Ana"}, {ID: "g2", Name: "Luis"}})
	require.NoError(t, err)

	records := coll.LoadAll(ctx)
	require.Len(t, records, 2)
	assert.Equal(t, "g1", records[0].ID)
	assert.Equal(t, "g2", records[1].ID)
}

func TestCollection_LoadAllSkipsInvalidRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guests.json")
	content := `[{"id": "g1"}, {"id": ""}, {"id": "g2", "name": 7}, {"id": "g3"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := jsonstore.New(path)
	coll := repository.NewCollection[guest]("guest", store, mocks.NewOtel())

	records := coll.LoadAll(context.Background())

	require.Len(t, records, 2)
	assert.Equal(t, "g1", records[0].ID)
	assert.Equal(t, "g3", records[1].ID)
}

func TestCollection_SaveAllNilPersistsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guests.json")
	store := jsonstore.New(path)
	coll := repository.NewCollection[guest]("guest", store, mocks.NewOtel())

	require.NoError(t, coll.SaveAll(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
