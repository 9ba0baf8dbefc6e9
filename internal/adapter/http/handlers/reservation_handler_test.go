package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda_etech/internal/adapter/http/handlers/mocks"
	"agenda_etech/internal/domain/entities"
	"agenda_etech/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func buildReservationRouter(t *testing.T) (*gin.Engine, *mocks.MockIReservationUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIReservationUseCase(ctrl)
	h := NewReservationHandler(uc)

	r := gin.New()
	r.POST("/v1/reservas", h.CreateReservation)
	r.GET("/v1/reservas", h.ListReservations)
	r.DELETE("/v1/reservas/:id", h.DeleteReservation)
	return r, uc
}

func TestReservationHandler_CreateReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _ := buildReservationRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/reservas", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid motivo", func(t *testing.T) {
		r, uc := buildReservationRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Reservation{}, usecase.ErrInvalidReservaMotivo)

		req := httptest.NewRequest(http.MethodPost, "/v1/reservas", bytes.NewBufferString(`{"motivo":"Festa","data":"2024-05-10","hora":"14:00","viatura":"VT01","cliente_nome":"Ana","cliente_contato":"11 9","cliente_endereco":"Rua A"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := buildReservationRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, res entities.Reservation) (entities.Reservation, error) {
			if res.Motivo != entities.ReservaMotivoSuporte || res.Viatura != "VT01" {
				t.Fatalf("unexpected entity from payload: %+v", res)
			}
			res.ID = "RES-1"
			res.CreatedAt = now
			return res, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/reservas", bytes.NewBufferString(`{"motivo":"Suporte","data":"2024-05-10","hora":"14:00","viatura":"VT01","cliente_nome":"Ana Dias","cliente_contato":"(11) 99999-0000","cliente_endereco":"Rua Azul, 12"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "RES-1" || body["status"] != entities.StatusReservado {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestReservationHandler_ListReservations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, uc := buildReservationRouter(t)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Reservation{{ID: "RES-1"}, {ID: "RES-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reservas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["id"] != "RES-1" {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestReservationHandler_DeleteReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		r, uc := buildReservationRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "RES-404").Return(usecase.ErrReservationNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/reservas/RES-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := buildReservationRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "RES-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/reservas/RES-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
