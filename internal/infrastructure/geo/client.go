package geo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Mode selecciona el comportamiento del cliente en construcción, en lugar de
// ramas por variable de entorno: el mismo código corre en tests y producción.
type Mode string

const (
	// ModeLive consulta el servicio de geolocalización real.
	ModeLive Mode = "live"
	// ModeFixture devuelve un valor fijo sin tocar la red.
	ModeFixture Mode = "fixture"
)

const defaultBaseURL = "http://ipinfo.io"

// LocationInfo es la geolocalización derivada de una dirección remota.
type LocationInfo struct {
	Region  string `json:"region"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// fixtureLocation es la respuesta canónica del modo fixture.
var fixtureLocation = LocationInfo{
	Region:  "Ulaanbaatar",
	City:    "Ulaanbaatar",
	Country: "Mongolia",
}

// Client resuelve la geolocalización de una dirección remota vía ipinfo.io.
type Client struct {
	mode    Mode
	baseURL string
	http    *http.Client
}

// New construye el cliente. baseURL vacío usa el servicio por defecto;
// en tests se apunta a un servidor httptest.
func New(mode Mode, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		mode:    mode,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// LocationInfo devuelve región/ciudad/país para la dirección remota dada.
// En modo fixture no hay I/O de red.
func (c *Client) LocationInfo(remoteAddress string) (LocationInfo, error) {
	if c.mode == ModeFixture {
		return fixtureLocation, nil
	}

	resp, err := c.http.Get(fmt.Sprintf("%s/%s/json", c.baseURL, remoteAddress))
	if err != nil {
		return LocationInfo{}, fmt.Errorf("consultar geolocalización: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LocationInfo{}, fmt.Errorf("geolocalización respondió %d", resp.StatusCode)
	}

	var info LocationInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return LocationInfo{}, fmt.Errorf("decodificar geolocalización: %w", err)
	}
	return info, nil
}
