package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/drewburchfield/gridiron/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// GetDocument streams the currently loaded raw document. This endpoint keeps
// the feed's own plain-XML contract rather than the JSON envelope: 200 with
// the document, or a 5xx with a plain-text body when none is available.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDocument")
	defer span.End()

	loaded, ok := h.loaderService.Current()
	if !ok {
		h.logger.WarnContext(ctx, "document requested before any load")
		http.Error(w, "no game document loaded", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(loaded.Raw)
}

type uploadDocumentParams struct {
	ContentType string `validate:"required,contains=xml"`
}

type loadResultDTO struct {
	LoadID     string `json:"loadId"`
	Generation uint64 `json:"generation"`
	Source     string `json:"source"`
	Committed  bool   `json:"committed"`
	GameID     string `json:"gameId,omitempty"`
}

func toLoadResultDTO(loaded *usecase.LoadedGame, committed bool) loadResultDTO {
	out := loadResultDTO{
		LoadID:     loaded.LoadID,
		Generation: loaded.Generation,
		Source:     loaded.Source,
		Committed:  committed,
	}
	if loaded.Record != nil {
		out.GameID = loaded.Record.Venue.GameID
	}
	return out
}

// UploadDocument ingests a user-provided document from the request body.
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadDocument")
	defer span.End()

	params := uploadDocumentParams{
		ContentType: strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Type"))),
	}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: request body must be XML", usecase.ErrInvalidInput))
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	limited := http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if _, err := buf.ReadFrom(limited); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(ctx, w, fmt.Errorf("%w: document exceeds %d bytes", usecase.ErrInvalidInput, h.maxUploadBytes))
			return
		}
		h.logger.ErrorContext(ctx, "read upload body failed", "error", err)
		writeError(ctx, w, fmt.Errorf("%w: read request body", usecase.ErrInvalidInput))
		return
	}

	loaded, committed, err := h.loaderService.LoadFromBytes(ctx, usecase.SourceUpload, buf.Bytes())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toLoadResultDTO(loaded, committed))
}

type createLoadRequest struct {
	Source string `json:"source" validate:"required,oneof=feed"`
}

// CreateLoad triggers a reload from the configured remote feed.
func (h *Handler) CreateLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLoad")
	defer span.End()

	var req createLoadRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %s", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	loaded, committed, err := h.loaderService.LoadFromFeed(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "feed load failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toLoadResultDTO(loaded, committed))
}

type loaderStatsDTO struct {
	Accepted  int64 `json:"accepted"`
	Committed int64 `json:"committed"`
	Discarded int64 `json:"discarded"`
}

func (h *Handler) GetLoaderStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLoaderStats")
	defer span.End()

	stats := h.loaderService.Stats()
	writeSuccess(ctx, w, http.StatusOK, loaderStatsDTO{
		Accepted:  stats.Accepted,
		Committed: stats.Committed,
		Discarded: stats.Discarded,
	})
}
