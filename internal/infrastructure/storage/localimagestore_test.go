package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the 8-byte PNG signature followed by an IHDR chunk start.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestLocalImageStore_Save(t *testing.T) {
	root := t.TempDir()
	store := NewLocalImageStore(root, "/media/", 1)

	ref, err := store.Save(context.Background(), "pothole.PNG", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "complaint_images/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "/media/"+ref, store.URL(ref))

	require.NoError(t, store.Delete(context.Background(), ref))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(ref)))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Delete(context.Background(), ref))
}

func TestLocalImageStore_RejectsExtension(t *testing.T) {
	store := NewLocalImageStore(t.TempDir(), "/media", 1)
	_, err := store.Save(context.Background(), "notes.pdf", bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestLocalImageStore_RejectsMismatchedContent(t *testing.T) {
	store := NewLocalImageStore(t.TempDir(), "/media", 1)
	_, err := store.Save(context.Background(), "photo.jpg", strings.NewReader("#!/bin/sh\necho hi\n"))
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestLocalImageStore_RejectsOversized(t *testing.T) {
	root := t.TempDir()
	store := NewLocalImageStore(root, "/media", 1)

	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 1<<20)...)
	_, err := store.Save(context.Background(), "big.png", bytes.NewReader(payload))
	assert.ErrorIs(t, err, ErrImageTooLarge)

	entries, err := os.ReadDir(filepath.Join(root, imageSubdir))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalImageStore_DeleteRejectsTraversal(t *testing.T) {
	store := NewLocalImageStore(t.TempDir(), "/media", 1)
	assert.Error(t, store.Delete(context.Background(), "../etc/passwd"))
}
