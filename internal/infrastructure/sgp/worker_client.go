package sgp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"

	"agenda_etech/internal/domain/entities"
	"agenda_etech/internal/usecase/interfaces"
)

// Default worker endpoint for processed payments; override with
// PAGAMENTOS_WORKER_URL.
const defaultPagamentosWorkerURL = "https://mute-bush-7a89.paulo-barrozosf.workers.dev/pagamentos"

var ErrMissingAgendaURL = errors.New("missing AGENDA_WORKER_URL")

// WorkerClient talks to the SGP-facing Cloudflare worker endpoints: the
// processed-payments feed and the per-vehicle agenda.
//
// FetchPayments never interprets the upstream reply: status and body travel
// back untouched inside a WorkerResponse so the pass-through route can relay
// them verbatim. Only a transport failure is an error.

type WorkerClient struct {
	pagamentosURL string
	agendaURL     string
	httpClient    *http.Client
}

var _ interfaces.IPaymentsWorkerGateway = (*WorkerClient)(nil)
var _ interfaces.IAgendaGateway = (*WorkerClient)(nil)

func NewWorkerClient(pagamentosURL, agendaURL string) *WorkerClient {
	return &WorkerClient{
		pagamentosURL: pagamentosURL,
		agendaURL:     agendaURL,
		httpClient:    http.DefaultClient,
	}
}

// NewWorkerClientFromEnv reads PAGAMENTOS_WORKER_URL and AGENDA_WORKER_URL.
func NewWorkerClientFromEnv() *WorkerClient {
	pagamentosURL := os.Getenv("PAGAMENTOS_WORKER_URL")
	if pagamentosURL == "" {
		pagamentosURL = defaultPagamentosWorkerURL
	}
	return NewWorkerClient(pagamentosURL, os.Getenv("AGENDA_WORKER_URL"))
}

func (c *WorkerClient) FetchPayments(ctx context.Context, inicio, fim string) (interfaces.WorkerResponse, error) {
	q := url.Values{}
	q.Set("inicio", inicio)
	q.Set("fim", fim)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pagamentosURL+"?"+q.Encode(), nil)
	if err != nil {
		return interfaces.WorkerResponse{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[sgp][worker] pagamentos fetch failed inicio=%s fim=%s err=%v", inicio, fim, err)
		return interfaces.WorkerResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.WorkerResponse{}, err
	}

	log.Printf("[sgp][worker] pagamentos fetch done inicio=%s fim=%s status=%d body_len=%d", inicio, fim, resp.StatusCode, len(body))
	return interfaces.WorkerResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *WorkerClient) FetchAgenda(ctx context.Context) (entities.Agenda, error) {
	if c.agendaURL == "" {
		return entities.Agenda{}, ErrMissingAgendaURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.agendaURL, nil)
	if err != nil {
		return entities.Agenda{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[sgp][worker] agenda fetch failed err=%v", err)
		return entities.Agenda{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[sgp][worker] agenda fetch status=%d", resp.StatusCode)
		return entities.Agenda{}, fmt.Errorf("agenda endpoint replied %d", resp.StatusCode)
	}

	var agenda entities.Agenda
	if err := json.NewDecoder(resp.Body).Decode(&agenda); err != nil {
		return entities.Agenda{}, err
	}
	return agenda, nil
}
