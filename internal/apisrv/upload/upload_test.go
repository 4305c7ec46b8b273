package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/jekabolt/waitlister/internal/apisrv/auth"
	"github.com/jekabolt/waitlister/internal/dependency/mocks"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var account = &entity.Account{Id: "acc-1", Email: "owner@x.com"}

func multipartRequest(t *testing.T, field, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="logo.png"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req.WithContext(auth.WithAccount(req.Context(), account))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestUploadImage(t *testing.T) {
	fs := mocks.NewFileStore(t)
	s := New(fs)
	content := []byte("\x89PNG\r\n\x1a\nfake")

	fs.EXPECT().UploadImage(mock.Anything, "acc-1", mock.Anything, int64(len(content)), "image/png").
		RunAndReturn(func(_ context.Context, _ string, r io.Reader, _ int64, _ string) (*entity.UploadedImage, error) {
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, content, got)
			return &entity.UploadedImage{
				URL:      "https://cdn.example.com/uploads/acc-1/x.png",
				Key:      "uploads/acc-1/x.png",
				BlurHash: "LEHV6nWB2yk8",
			}, nil
		}).Once()

	rec := httptest.NewRecorder()
	s.UploadImage(rec, multipartRequest(t, "file", "image/png", content))

	assert.Equal(t, http.StatusCreated, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "https://cdn.example.com/uploads/acc-1/x.png", out["url"])
	assert.Equal(t, "LEHV6nWB2yk8", out["blurhash"])
}

func TestUploadImageNoFile(t *testing.T) {
	s := New(mocks.NewFileStore(t))

	rec := httptest.NewRecorder()
	s.UploadImage(rec, multipartRequest(t, "other", "image/png", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file provided.", decode(t, rec)["message"])
}

func TestUploadImageTooLarge(t *testing.T) {
	s := New(mocks.NewFileStore(t))

	rec := httptest.NewRecorder()
	s.UploadImage(rec, multipartRequest(t, "file", "image/png", make([]byte, maxFileSize+1)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadImageUnauthenticated(t *testing.T) {
	s := New(mocks.NewFileStore(t))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rec := httptest.NewRecorder()
	s.UploadImage(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploadImageStoreErrors(t *testing.T) {
	fs := mocks.NewFileStore(t)
	s := New(fs)

	fs.EXPECT().UploadImage(mock.Anything, "acc-1", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, gerr.Validation("Unsupported file type.")).Once()
	rec := httptest.NewRecorder()
	s.UploadImage(rec, multipartRequest(t, "file", "text/plain", []byte("hello")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fs.EXPECT().UploadImage(mock.Anything, "acc-1", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("s3 down")).Once()
	rec = httptest.NewRecorder()
	s.UploadImage(rec, multipartRequest(t, "file", "image/png", []byte("\x89PNG\r\n\x1a\n")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["message"])
}
