// Package http contains the HTTP handlers and router for the upload and
// dashboard surface.
package http

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"distrep/internal/config"
	apierrors "distrep/internal/errors"
	"distrep/internal/exporter"
	"distrep/internal/files"
	"distrep/internal/services"
)

// ReportHandler handles report upload, retrieval, and export requests.
type ReportHandler struct {
	service *services.ReportService
	export  *exporter.CSVWriter
	upload  config.UploadConfig
	logger  *slog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service *services.ReportService, upload config.UploadConfig, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		export:  exporter.NewCSVWriter(logger),
		upload:  upload,
		logger:  logger.With(slog.String("handler", "report")),
	}
}

// Process handles POST /api/reports/process. It materializes the uploaded
// files under their original names in a per-request temp directory, runs the
// batch, and responds with the combined report. The temp directory is
// removed regardless of outcome.
func (h *ReportHandler) Process(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, int64(h.upload.MaxFiles)*h.upload.MaxFileSize)
	if err := r.ParseMultipartForm(h.upload.MaxFileSize); err != nil {
		render.Render(w, r, apierrors.InvalidRequestWithError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	uploads := r.MultipartForm.File["files"]
	if len(uploads) == 0 {
		render.Render(w, r, apierrors.ErrNoFiles)
		return
	}
	if len(uploads) > h.upload.MaxFiles {
		render.Render(w, r, apierrors.NewWithDetails(http.StatusBadRequest, "TOO_MANY_FILES",
			fmt.Sprintf("Upload no more than %d files", h.upload.MaxFiles), len(uploads)))
		return
	}
	for _, fh := range uploads {
		if !files.IsReportFile(fh.Filename) {
			render.Render(w, r, apierrors.BadFileTypeError(filepath.Base(fh.Filename)))
			return
		}
	}

	// Keep the original file names: the distributor label derives from
	// them, never from temp-storage paths.
	batchDir := filepath.Join(h.upload.TempDir, uuid.New().String())
	if err := os.MkdirAll(batchDir, 0700); err != nil {
		h.logger.ErrorContext(ctx, "failed to create batch dir", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.ErrInternalServer)
		return
	}
	defer os.RemoveAll(batchDir)

	paths := make([]string, 0, len(uploads))
	for _, fh := range uploads {
		path, err := saveUpload(fh, batchDir)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to save upload",
				slog.String("file", fh.Filename),
				slog.String("error", err.Error()))
			render.Render(w, r, apierrors.ErrInternalServer)
			return
		}
		paths = append(paths, path)
	}

	combined := h.service.ProcessFiles(ctx, paths)
	render.JSON(w, r, combined)
}

// Latest handles GET /api/reports/latest.
func (h *ReportHandler) Latest(w http.ResponseWriter, r *http.Request) {
	latest := h.service.Latest()
	if latest == nil {
		render.Render(w, r, apierrors.ErrNoData)
		return
	}
	render.JSON(w, r, latest)
}

// Summary handles GET /api/reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary := h.service.Summary()
	if summary == nil {
		render.Render(w, r, apierrors.ErrNoData)
		return
	}
	render.JSON(w, r, summary)
}

// ExportCSV handles GET /api/reports/latest/csv, streaming the latest
// combined report as a CSV download.
func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	latest := h.service.Latest()
	if latest == nil {
		render.Render(w, r, apierrors.ErrNoData)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="combined_report.csv"`)
	if err := h.export.Write(w, latest); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to stream CSV export",
			slog.String("error", err.Error()))
	}
}

func saveUpload(fh *multipart.FileHeader, dir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(dir, filepath.Base(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return path, nil
}
