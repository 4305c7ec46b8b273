package upload

import (
	"errors"
	"net/http"

	"github.com/jekabolt/waitlister/internal/apisrv/auth"
	"github.com/jekabolt/waitlister/internal/apisrv/respond"
	"github.com/jekabolt/waitlister/internal/dependency"
	"github.com/jekabolt/waitlister/internal/dto"
	gerr "github.com/jekabolt/waitlister/internal/errors"
)

const (
	maxFileSize = 5 << 20
	// multipart framing and other form fields on top of the file itself
	maxBodySize = maxFileSize + 1<<20
	formField   = "file"
)

type Server struct {
	files dependency.FileStore
}

func New(fs dependency.FileStore) *Server {
	return &Server{files: fs}
}

// UploadImage stores a single image from the multipart field "file".
func (s *Server) UploadImage(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		respond.Error(w, r, "UploadImage", gerr.ErrUnauthenticated)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseMultipartForm(maxFileSize); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			respond.Error(w, r, "UploadImage:ParseMultipartForm", tooLarge())
			return
		}
		respond.Error(w, r, "UploadImage:ParseMultipartForm", gerr.Validation("Invalid multipart form."))
		return
	}
	defer r.MultipartForm.RemoveAll()

	f, fh, err := r.FormFile(formField)
	if err != nil {
		respond.Error(w, r, "UploadImage:FormFile", gerr.Validation("No file provided."))
		return
	}
	defer f.Close()

	if fh.Size > maxFileSize {
		respond.Error(w, r, "UploadImage", tooLarge())
		return
	}
	if fh.Size == 0 {
		respond.Error(w, r, "UploadImage", gerr.Validation("File is empty."))
		return
	}

	img, err := s.files.UploadImage(r.Context(), acc.Id, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		respond.Error(w, r, "UploadImage:UploadImage", err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, &dto.UploadResponse{
		Success:  true,
		URL:      img.URL,
		Key:      img.Key,
		BlurHash: img.BlurHash,
	})
}

func tooLarge() error {
	return gerr.TooLarge("File too large. Maximum size is 5MB.")
}
