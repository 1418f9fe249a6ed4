package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStoreSaveAndRemove(t *testing.T) {
	root := t.TempDir()
	store := NewImageStore(root, "http://localhost:8000/")

	url, err := store.Save("products/abc-123.png", []byte{0x89, 0x50})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/static/product-images/products/abc-123.png", url)

	full := filepath.Join(root, "products", "abc-123.png")
	_, err = os.Stat(full)
	require.NoError(t, err)

	store.RemoveByURL(url)
	_, err = os.Stat(full)
	assert.True(t, os.IsNotExist(err))
}

func TestImageStoreRemoveIgnoresForeignURLs(t *testing.T) {
	store := NewImageStore(t.TempDir(), "http://localhost:8000")

	// None of these should panic or touch the filesystem.
	store.RemoveByURL("")
	store.RemoveByURL("https://cdn.example.com/avatar.png")
	store.RemoveByURL("http://localhost:8000/static/product-images/")
}

func TestImageStoreRemoveMissingObjectIsSilent(t *testing.T) {
	store := NewImageStore(t.TempDir(), "http://localhost:8000")
	store.RemoveByURL(store.PublicURL("products/nunca-existiu.png"))
}
