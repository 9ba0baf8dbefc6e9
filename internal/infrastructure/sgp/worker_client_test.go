package sgp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWorkerClient_FetchPayments(t *testing.T) {
	t.Run("forwards period and carries back status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("inicio") != "2024-01-01" || r.URL.Query().Get("fim") != "2024-01-31" {
				t.Fatalf("unexpected query: %s", r.URL.RawQuery)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`[{"valorPago":10}]`))
		}))
		defer srv.Close()

		c := NewWorkerClient(srv.URL, "")
		resp, err := c.FetchPayments(context.Background(), "2024-01-01", "2024-01-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusOK || string(resp.Body) != `[{"valorPago":10}]` {
			t.Fatalf("unexpected response: %d %s", resp.StatusCode, resp.Body)
		}
	})

	t.Run("upstream failure is not a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("worker down"))
		}))
		defer srv.Close()

		c := NewWorkerClient(srv.URL, "")
		resp, err := c.FetchPayments(context.Background(), "2024-01-01", "2024-01-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.IsSuccess() || resp.StatusCode != http.StatusServiceUnavailable || string(resp.Body) != "worker down" {
			t.Fatalf("unexpected response: %d %s", resp.StatusCode, resp.Body)
		}
	})

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // connection refused from here on

		c := NewWorkerClient(srv.URL, "")
		if _, err := c.FetchPayments(context.Background(), "2024-01-01", "2024-01-31"); err == nil {
			t.Fatalf("expected transport error")
		}
	})
}

func TestWorkerClient_FetchAgenda(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		c := NewWorkerClient("", "")
		if _, err := c.FetchAgenda(context.Background()); err != ErrMissingAgendaURL {
			t.Fatalf("expected ErrMissingAgendaURL, got %v", err)
		}
	})

	t.Run("decodes the agenda payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"viaturas":["VT01"],"dias":[{"data":"2024-05-10","porViatura":{"VT01":[{"tipo":"os","id":"OS-1"}]}}]}`))
		}))
		defer srv.Close()

		c := NewWorkerClient("", srv.URL)
		agenda, err := c.FetchAgenda(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(agenda.Viaturas) != 1 || agenda.Viaturas[0] != "VT01" {
			t.Fatalf("unexpected viaturas: %v", agenda.Viaturas)
		}
		if len(agenda.Dias) != 1 || agenda.Dias[0].PorViatura["VT01"][0].ID != "OS-1" {
			t.Fatalf("unexpected dias: %+v", agenda.Dias)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewWorkerClient("", srv.URL)
		if _, err := c.FetchAgenda(context.Background()); err == nil {
			t.Fatalf("expected error for 502")
		}
	})
}
