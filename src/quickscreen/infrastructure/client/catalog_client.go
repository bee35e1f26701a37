package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/quickscreen/domain/port"
)

// productDTO producto como lo devuelve el catálogo del back-office
type productDTO struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type listProductsResponse struct {
	Products []productDTO `json:"products"`
}

// CatalogClient cliente HTTP del catálogo de productos del back-office
type CatalogClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCatalogClient crea una nueva instancia del cliente
func NewCatalogClient(baseURL string) port.CatalogService {
	return &CatalogClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// ListProductIDs retorna los ids de los productos ACTIVOS de la tienda, en
// el orden del catálogo (ese orden define la partición por defecto)
func (c *CatalogClient) ListProductIDs(ctx context.Context, storeID uuid.UUID, authToken string) ([]uuid.UUID, error) {
	url := fmt.Sprintf("%s/api/v1/products?store_id=%s", c.baseURL, storeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("X-Store-ID", storeID.String())
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling backoffice: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backoffice returned status %d: %s", resp.StatusCode, string(body))
	}

	var listResp listProductsResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(listResp.Products))
	for _, product := range listResp.Products {
		if product.Status == "ACTIVE" {
			ids = append(ids, product.ID)
		}
	}
	return ids, nil
}
