// Package viacep cliente HTTP do ViaCEP (https://viacep.com.br) com até três
// tentativas e backoff exponencial. Indisponibilidade do provedor é tratada
// como "não encontrado", nunca como falha do comando.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/seu-usuario/crm-clientes/internal/application/zipcode"
	"github.com/seu-usuario/crm-clientes/pkg/config"
	"github.com/seu-usuario/crm-clientes/pkg/logger"
)

var _ zipcode.Client = (*Client)(nil)

const maxAttempts = 3

// Client consulta CEPs no ViaCEP.
type Client struct {
	http    *http.Client
	baseURL string
	log     *logger.Logger
}

// New constrói o cliente com timeout configurável.
func New(cfg config.ViaCEPConfig, log *logger.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		baseURL: cfg.BaseURL,
		log:     log,
	}
}

// payload resposta do ViaCEP. "erro": true indica CEP inexistente.
type payload struct {
	Cep        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Lookup consulta o CEP (já normalizado, 8 dígitos). Devolve (nil, nil)
// quando o provedor fica indisponível após todas as tentativas.
func (c *Client) Lookup(ctx context.Context, zipCode string) (*zipcode.Info, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, zipCode)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			// Backoff exponencial: 2s, 4s.
			delay := time.Duration(1<<(attempt-1)) * time.Second
			c.log.Warn().
				Str("cep", zipCode).
				Int("tentativa", attempt).
				Dur("espera", delay).
				Msg("nova tentativa de consulta ao ViaCEP")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		info, retry, err := c.tryLookup(ctx, url, zipCode)
		if err == nil {
			return info, nil
		}
		lastErr = err
		if !retry {
			return nil, err
		}
	}

	c.log.Error().Err(lastErr).Str("cep", zipCode).Msg("ViaCEP indisponível após todas as tentativas")
	return nil, nil
}

// tryLookup faz uma tentativa. retry=true para falhas de rede/HTTP;
// cancelamento de contexto não é retentado.
func (c *Client) tryLookup(ctx context.Context, url, zipCode string) (info *zipcode.Info, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("montar requisição: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("consultar ViaCEP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, true, fmt.Errorf("ViaCEP respondeu %d", resp.StatusCode)
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, true, fmt.Errorf("decodificar resposta: %w", err)
	}
	if p.Erro {
		return &zipcode.Info{ZipCode: zipCode, Found: false}, false, nil
	}
	return &zipcode.Info{
		ZipCode:      zipCode,
		Street:       p.Logradouro,
		Neighborhood: p.Bairro,
		City:         p.Localidade,
		State:        p.UF,
		Found:        true,
	}, false, nil
}
