package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shorts_studio/internal/store"
)

func TestSlot_ReadMissing(t *testing.T) {
	slot := NewSlot(t.TempDir(), "content")

	_, err := slot.Read(context.Background())
	assert.ErrorIs(t, err, store.ErrSlotEmpty)
}

func TestSlot_WriteThenRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	slot := NewSlot(dir, "content")
	ctx := context.Background()

	require.NoError(t, slot.Write(ctx, []byte(`[{"id":"a"}]`)))
	require.NoError(t, slot.Write(ctx, []byte(`[]`)))

	data, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Equal(t, filepath.Join(dir, "content.json"), slot.Path())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}
