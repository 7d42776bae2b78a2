// Package handler はHTTPハンドラを提供する。
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"potd-service/internal/domain"
	"potd-service/internal/middleware"
	"potd-service/internal/usecase"
	"potd-service/pkg/httputil"
)

const defaultAuditLimit = 50

// PotdHandler はHTTPハンドラを提供する。
type PotdHandler struct {
	service *usecase.PotdService
}

// NewPotdHandler は新しいPotdHandlerを生成する。
func NewPotdHandler(service *usecase.PotdService) *PotdHandler {
	return &PotdHandler{service: service}
}

// PasswordResponse は1日分のパスワードのレスポンス形式。
type PasswordResponse struct {
	Date     string `json:"date"`
	Password string `json:"password"`
}

// RangeResponse は範囲生成のレスポンス形式。日付昇順の対のリスト。
type RangeResponse struct {
	Passwords []domain.PasswordEntry `json:"passwords"`
}

// SeedDESResponse はシード診断のレスポンス形式。
type SeedDESResponse struct {
	DES string `json:"des"`
}

// AuditEntryResponse は監査レコードのレスポンス形式。
type AuditEntryResponse struct {
	Operation string `json:"operation"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Result    string `json:"result"`
	CreatedAt string `json:"created_at"`
}

// AuditListResponse は監査レコード一覧のレスポンス形式。
type AuditListResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
}

// writeGenerationError は生成エラーをHTTPレスポンスへ変換する。
func writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSeed):
		httputil.Error(w, http.StatusBadRequest, "INVALID_SEED", err.Error())
	case errors.Is(err, domain.ErrInvalidDate):
		httputil.Error(w, http.StatusBadRequest, "INVALID_DATE", err.Error())
	case errors.Is(err, domain.ErrInvalidDateRange):
		httputil.Error(w, http.StatusBadRequest, "INVALID_DATE_RANGE", err.Error())
	default:
		httputil.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// GetByDate は指定日のパスワードを生成する。
func (h *PotdHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	seed := r.URL.Query().Get("seed")

	password, err := h.service.Generate(r.Context(), date, seed)
	if err != nil {
		middleware.WriteOperationLog(r.Context(), "GENERATE", date, "FAILED")
		writeGenerationError(w, err)
		return
	}

	middleware.WriteOperationLog(r.Context(), "GENERATE", date, "SUCCESS")
	httputil.JSON(w, http.StatusOK, PasswordResponse{Date: date, Password: password})
}

// GetCurrent は本日のパスワードを生成する。日付の決定はエンジンでは
// なくこの層（外部呼び出し側）の責務。
func (h *PotdHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	date := time.Now().Format("2006-01-02")
	seed := r.URL.Query().Get("seed")

	password, err := h.service.Generate(r.Context(), date, seed)
	if err != nil {
		middleware.WriteOperationLog(r.Context(), "GENERATE_CURRENT", date, "FAILED")
		writeGenerationError(w, err)
		return
	}

	middleware.WriteOperationLog(r.Context(), "GENERATE_CURRENT", date, "SUCCESS")
	httputil.JSON(w, http.StatusOK, PasswordResponse{Date: date, Password: password})
}

// GetRange は開始日から終了日までのパスワード一覧を生成する。
func (h *PotdHandler) GetRange(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	seed := r.URL.Query().Get("seed")
	target := start + ".." + end

	entries, err := h.service.GenerateRange(r.Context(), start, end, seed)
	if err != nil {
		middleware.WriteOperationLog(r.Context(), "GENERATE_RANGE", target, "FAILED")
		writeGenerationError(w, err)
		return
	}

	middleware.WriteOperationLog(r.Context(), "GENERATE_RANGE", target, "SUCCESS")
	httputil.JSON(w, http.StatusOK, RangeResponse{Passwords: entries})
}

// GetSeedDES はシードから導出した鍵の16進表現を返す（診断用）。
func (h *PotdHandler) GetSeedDES(w http.ResponseWriter, r *http.Request) {
	seed := r.URL.Query().Get("seed")

	rendering, err := h.service.SeedToDES(r.Context(), seed)
	if err != nil {
		middleware.WriteOperationLog(r.Context(), "SEED_TO_DES", "", "FAILED")
		writeGenerationError(w, err)
		return
	}

	middleware.WriteOperationLog(r.Context(), "SEED_TO_DES", "", "SUCCESS")
	httputil.JSON(w, http.StatusOK, SeedDESResponse{DES: rendering})
}

// ListAudit は直近の監査レコード一覧を返す。
func (h *PotdHandler) ListAudit(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 500 {
			httputil.Error(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	entries, err := h.service.ListAudit(r.Context(), limit)
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	response := AuditListResponse{
		Entries: make([]AuditEntryResponse, len(entries)),
	}
	for i, e := range entries {
		response.Entries[i] = AuditEntryResponse{
			Operation: e.Operation,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
			Result:    string(e.Result),
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}
	httputil.JSON(w, http.StatusOK, response)
}
