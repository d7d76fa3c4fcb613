package appapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/messenger-api/pkg/logger"
)

// Client notifica registros de actividad al API principal mediante una
// mutación GraphQL. Las llamadas son fire-and-forget: se disparan en una
// goroutine, nunca se espera el resultado y un fallo jamás llega al caller
// (solo se registra en el log).
type Client struct {
	url  string
	http *http.Client
	log  *logger.Logger
}

// New construye el cliente. timeout acota cada petición saliente.
func New(url string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// CustomerCreated notifica que se creó el cliente con ese ID.
func (c *Client) CustomerCreated(id string) {
	c.fireAndForget(fmt.Sprintf(`mutation { activityLogsAddCustomerLog(_id: %q) { _id } }`, id))
}

// CompanyCreated notifica que se creó la empresa con ese ID.
func (c *Client) CompanyCreated(id string) {
	c.fireAndForget(fmt.Sprintf(`mutation { activityLogsAddCompanyLog(_id: %q) { _id } }`, id))
}

func (c *Client) fireAndForget(query string) {
	go func() {
		if err := c.mutate(query); err != nil {
			c.log.Warn().Err(err).Msg("notificación de actividad descartada")
		}
	}()
}

func (c *Client) mutate(query string) error {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return fmt.Errorf("serializar mutación: %w", err)
	}

	resp, err := c.http.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("app api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("app api respondió %d", resp.StatusCode)
	}
	return nil
}
