package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeStore) UploadFile(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = b
	return nil
}

func (f *fakeStore) GetPresignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	return "http://minio.local/bucket/" + key + "?sig=x", nil
}

func multipartImage(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="cover"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func withEmail(c *gin.Context) {
	c.Set("email", "a@b.c")
	c.Next()
}

func TestUploadImage(t *testing.T) {
	store := &fakeStore{}
	g := gin.New()
	RegisterUploadRoutes(g, store, withEmail)

	body, ct := multipartImage(t, "image/png", []byte("\x89PNG data"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/uploadImage", body)
	req.Header.Set("Content-Type", ct)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.True(t, strings.HasPrefix(res["key"], "covers/a@b.c/"))
	require.Contains(t, res["imageUrl"], res["key"])
	require.Equal(t, []byte("\x89PNG data"), store.objects[res["key"]])
}

func TestUploadImage_Rejects(t *testing.T) {
	store := &fakeStore{}
	g := gin.New()
	RegisterUploadRoutes(g, store, withEmail)

	body, ct := multipartImage(t, "text/html", []byte("<script>"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/uploadImage", body)
	req.Header.Set("Content-Type", ct)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/uploadImage", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, store.objects)
}
