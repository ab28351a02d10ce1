package notes

import (
	"errors"
	"log"
	"net/http"

	"labquest-backend/internal/ai"
	"labquest-backend/internal/httputil"
)

// UploadAudioHandler accepts multipart form data: file, mode, summary_level.
func UploadAudioHandler(o *Orchestrator, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httputil.WriteError(w, "file too large", http.StatusRequestEntityTooLarge)
				return
			}
			httputil.WriteError(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				log.Printf("[WARN] remove multipart temp files: %v", err)
			}
		}()

		file, header, err := r.FormFile("file")
		if err != nil {
			httputil.WriteError(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		mode, err := ai.ParseMode(r.FormValue("mode"))
		if err != nil {
			httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		length, err := ai.ParseLength(r.FormValue("summary_level"))
		if err != nil {
			httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := o.Process(r.Context(), Upload{Filename: header.Filename, Body: file}, Options{
			Mode:   mode,
			Length: length,
		})
		if err != nil {
			log.Printf("[ERROR] upload %q mode=%s: %v", header.Filename, mode, err)
			httputil.WriteError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, res)
	}
}

// RegisterRoutes mounts the upload endpoint; wrap may be nil.
func RegisterRoutes(mux *http.ServeMux, o *Orchestrator, maxBytes int64, wrap func(http.HandlerFunc) http.HandlerFunc) {
	h := UploadAudioHandler(o, maxBytes)
	if wrap != nil {
		h = wrap(h)
	}

	mux.HandleFunc("POST /upload-audio/{$}", h)
	mux.HandleFunc("POST /upload-audio", h)
}
