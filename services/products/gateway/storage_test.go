package gateway

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestUploadImage_ReturnsURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "chair.jpg", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg bytes"), content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"https://cdn.example.com/chair.jpg"}`))
	}))
	defer server.Close()

	gw := NewStorageGW(server.URL, 5*time.Second)

	url, err := gw.UploadImage(context.Background(), buildFileHeader(t, "chair.jpg", []byte("jpeg bytes")))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/chair.jpg", url)
}

func TestUploadImage_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gw := NewStorageGW(server.URL, 5*time.Second)

	_, err := gw.UploadImage(context.Background(), buildFileHeader(t, "chair.jpg", []byte("jpeg bytes")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage service")
}
