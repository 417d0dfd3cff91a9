package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"alternates-service/internal/alternates/model"
	altSvc "alternates-service/internal/alternates/service"
	"alternates-service/internal/config"
	"alternates-service/internal/middleware"
)

// FileField is the multipart field carrying the upload.
const FileField = "file"

// Alternates returns the upload handler, mounted as
// r.Post("/alternates", altHnd.Alternates(cfg, logger)).
func Alternates(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	maxMemory := int64(cfg.MaxUploadMB) << 20

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.With().Str("rid", middleware.GetRequestID(r)).Logger()

		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
			return
		}
		defer r.Body.Close()

		if err := r.ParseMultipartForm(maxMemory); err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				writeError(w, http.StatusRequestEntityTooLarge, "file exceeds "+strconv.Itoa(cfg.MaxUploadMB)+" MB", "")
				return
			}
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error(), "")
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		file, header, err := r.FormFile(FileField)
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing "+FileField+": "+err.Error(), "")
			return
		}
		defer file.Close()

		art, err := altSvc.Process(file, header.Filename)
		if err != nil {
			var me *model.Error
			if !errors.As(err, &me) {
				me = model.Computation("%v", err)
			}
			log.Warn().
				Str("file", header.Filename).
				Str("kind", string(me.Kind)).
				Err(err).
				Msg("alternates failed")
			writeError(w, statusFor(me.Kind), me.Error(), me.Kind)
			return
		}

		w.Header().Set("Content-Type", art.ContentType)
		w.Header().Set("Content-Disposition", attachment(art.Name))
		w.Header().Set("Content-Length", strconv.Itoa(len(art.Data)))
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("X-Rows", strconv.Itoa(art.Summary.TargetRows))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(art.Data); err != nil {
			log.Error().Err(err).Msg("write artifact")
			return
		}

		log.Info().
			Str("file", art.Name).
			Str("format", string(art.Format)).
			Int("salesRows", art.Summary.SalesRows).
			Int("targetRows", art.Summary.TargetRows).
			Int("groups", art.Summary.Groups).
			Int("matched", art.Summary.Matched).
			Dur("elapsed", time.Since(start)).
			Msg("alternates done")
	}
}
