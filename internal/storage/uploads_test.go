package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shop-service/internal/config"
)

func fileHeaders(t *testing.T, files map[string]string) []*multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["images"]
}

func TestImageStore_SavesUnderUploadDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(config.UploadConfig{Dir: dir, MaxFiles: 5, MaxFileBytes: 1024})
	require.NoError(t, err)

	paths, err := store.Save(fileHeaders(t, map[string]string{"mat.PNG": "png-bytes"}))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.True(t, strings.HasPrefix(paths[0], "/uploads/"))
	assert.True(t, strings.HasSuffix(paths[0], ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(paths[0])))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestImageStore_Rejections(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(config.UploadConfig{Dir: dir, MaxFiles: 1, MaxFileBytes: 4})
	require.NoError(t, err)

	_, err = store.Save(fileHeaders(t, map[string]string{"a.png": "1", "b.png": "2"}))
	assert.ErrorContains(t, err, "A maximum of 1 images is allowed")

	_, err = store.Save(fileHeaders(t, map[string]string{"notes.txt": "1"}))
	assert.ErrorContains(t, err, "Only image files are allowed")

	_, err = store.Save(fileHeaders(t, map[string]string{"big.jpg": "too large"}))
	assert.ErrorContains(t, err, "File too large")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
