package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_capacidade/internal/adapter/http/handlers/mocks"
	"gestao_capacidade/internal/domain/capacity"
	"gestao_capacidade/internal/infrastructure/logger"
	"gestao_capacidade/internal/usecase"
	"gestao_capacidade/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.SetOutput(io.Discard)
}

func serveCapacity(t *testing.T, uc usecase.ICapacityAnalysisUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewCapacityHandler(uc)
	r := gin.New()
	r.POST("/v1/capacity-analysis", h.Analyze)

	req := httptest.NewRequest(http.MethodPost, "/v1/capacity-analysis", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCapacityHandler_Analyze(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICapacityAnalysisUseCase(ctrl)

		w := serveCapacity(t, uc, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "VALIDATION_FAILED" || body.Success {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("empty ordem_niveis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICapacityAnalysisUseCase(ctrl)

		w := serveCapacity(t, uc, `{"data_inicio":"2024-01-01","data_fim":"2024-01-31","ordem_niveis":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if len(body.Details["ordem_niveis"]) == 0 {
			t.Fatalf("expected ordem_niveis detail, got %+v", body)
		}
	})

	t.Run("invalid id type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICapacityAnalysisUseCase(ctrl)

		w := serveCapacity(t, uc, `{"data_inicio":"2024-01-01","data_fim":"2024-01-31","ordem_niveis":["cliente"],"cliente_id":{"id":1}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("use case validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICapacityAnalysisUseCase(ctrl)
		uc.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(capacity.Result{}, &usecase.ValidationError{
			Fields: map[string][]string{"data_fim": {"data_inicio deve ser anterior ou igual a data_fim"}},
		})

		w := serveCapacity(t, uc, `{"data_inicio":"2024-02-01","data_fim":"2024-01-31","ordem_niveis":["cliente"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); len(body.Details["data_fim"]) != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICapacityAnalysisUseCase(ctrl)
		uc.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(capacity.Result{}, fmt.Errorf("list time records: %w", errors.New("db down")))

		w := serveCapacity(t, uc, `{"data_inicio":"2024-01-01","data_fim":"2024-01-31","ordem_niveis":["cliente"]}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "INTERNAL_ERROR" || bytes.Contains(w.Body.Bytes(), []byte("db down")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICapacityAnalysisUseCase(ctrl)
		uc.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(capacity.Result{}, context.DeadlineExceeded)

		w := serveCapacity(t, uc, `{"data_inicio":"2024-01-01","data_fim":"2024-01-31","ordem_niveis":["cliente"]}`)
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICapacityAnalysisUseCase(ctrl)

		start, _ := capacity.ParseDate("2024-01-01")
		end, _ := capacity.ParseDate("2024-01-31")
		ordering, _ := capacity.NewOrdering([]string{"colaborador", "cliente"})
		result := capacity.Analyze(capacity.Input{}, capacity.Params{Start: start, End: end, Ordering: ordering})

		uc.EXPECT().Analyze(gomock.Any(), gomock.AssignableToTypeOf(usecase.CapacityAnalysisCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.CapacityAnalysisCommand) (capacity.Result, error) {
				if cmd.DataInicio != "2024-01-01" || len(cmd.OrdemNiveis) != 2 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if len(cmd.ColaboradorIDs) != 2 || cmd.ColaboradorIDs[0] != "1" || cmd.ColaboradorIDs[1] != "2" {
					t.Fatalf("unexpected colaborador ids: %v", cmd.ColaboradorIDs)
				}
				if !cmd.IgnorarFinaisSemana {
					t.Fatalf("expected ignorar_finais_semana")
				}
				return result, nil
			},
		)

		w := serveCapacity(t, uc, `{"data_inicio":"2024-01-01","data_fim":"2024-01-31","ordem_niveis":["colaborador","cliente"],"colaborador_id":[1,"2"],"ignorar_finais_semana":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["success"] != true {
			t.Fatalf("expected success: %v", body)
		}
		if _, ok := body["resumo_colaboradores"]; !ok {
			t.Fatalf("expected resumo_colaboradores: %v", body)
		}
		if body["periodo"].(map[string]any)["quantidade_dias"] != float64(31) {
			t.Fatalf("unexpected periodo: %v", body["periodo"])
		}
	})
}
