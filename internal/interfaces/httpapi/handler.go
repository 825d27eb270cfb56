package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/drewburchfield/gridiron/internal/platform/logging"
	"github.com/drewburchfield/gridiron/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	boxscoreService *usecase.BoxscoreService
	loaderService   *usecase.LoaderService
	logger          *logging.Logger
	validator       *validator.Validate
	maxUploadBytes  int64
}

func NewHandler(
	boxscoreService *usecase.BoxscoreService,
	loaderService *usecase.LoaderService,
	logger *logging.Logger,
	maxUploadBytes int64,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 4 << 20
	}

	return &Handler{
		boxscoreService: boxscoreService,
		loaderService:   loaderService,
		logger:          logger,
		validator:       validator.New(),
		maxUploadBytes:  maxUploadBytes,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, req any) error {
	if err := h.validator.StructCtx(ctx, req); err != nil {
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, err)
	}
	return nil
}
