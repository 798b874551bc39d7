package jsonstore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posada/infras/jsonstore"
)

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
		want    int
	}{
		{
			name:    "missing file degrades to empty list",
			missing: true,
			want:    0,
		},
		{
			name:    "malformed JSON degrades to empty list",
			content: `{"hotel_id": "H1"`,
			want:    0,
		},
		{
			name:    "non-list root degrades to empty list",
			content: `{"hotel_id": "H1"}`,
			want:    0,
		},
		{
			name:    "empty list",
			content: `[]`,
			want:    0,
		},
		{
			name:    "valid list",
			content: `[{"hotel_id": "H1"}, {"hotel_id": "H2"}]`,
			want:    2,
		},
		{
			name:    "non-record elements are skipped one by one",
			content: `[{"hotel_id": "H1"}, 42, "oops", {"hotel_id": "H2"}, null]`,
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "store.json")
			if !tt.missing {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			store := jsonstore.New(path)
			rows := store.Load()

			assert.Len(t, rows, tt.want)
		})
	}
}

func TestStore_SaveThenLoad(t *testing.T) {
	type row struct {
		ID string `json:"id"`
	}

	path := filepath.Join(t.TempDir(), "nested", "store.json")
	store := jsonstore.New(path)

	err := store.Save([]row{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	require.NoError(t, err)

	rows := store.Load()
	require.Len(t, rows, 3)

	var first row
	require.NoError(t, json.Unmarshal(rows[0], &first))
	assert.Equal(t, "a", first.ID)

	var last row
	require.NoError(t, json.Unmarshal(rows[2], &last))
	assert.Equal(t, "c", last.ID)
}

func TestStore_SaveOverwrites(t *testing.T) {
	type row struct {
		ID string `json:"id"`
	}

	path := filepath.Join(t.TempDir(), "store.json")
	store := jsonstore.New(path)

	require.NoError(t, store.Save([]row{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, store.Save([]row{{ID: "c"}}))

	rows := store.Load()
	require.Len(t, rows, 1)

	var only row
	require.NoError(t, json.Unmarshal(rows[0], &only))
	assert.Equal(t, "c", only.ID)
}

func TestStore_SaveWriteFailure(t *testing.T) {
	dir := t.TempDir()

	// the store path points at a directory, so the write must fail
	store := jsonstore.New(dir)

	err := store.Save([]struct{}{})
	assert.Error(t, err)
}
