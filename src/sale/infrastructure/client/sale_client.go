package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/port"
)

type createSaleRequest struct {
	StoreID    uuid.UUID  `json:"store_id"`
	SessionID  uuid.UUID  `json:"session_id"`
	RegisterID *uuid.UUID `json:"register_id,omitempty"`
}

type saleDTO struct {
	ID             uuid.UUID  `json:"id"`
	DocumentNumber string     `json:"document_number"`
	Status         string     `json:"status"`
	StoreID        uuid.UUID  `json:"store_id"`
	SessionID      uuid.UUID  `json:"session_id"`
	RegisterID     *uuid.UUID `json:"register_id"`
	Lines          []lineDTO  `json:"lines"`
}

type lineDTO struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type addLineRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type applyPaymentRequest struct {
	TenderType string          `json:"tender_type"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference,omitempty"`
}

type paymentDTO struct {
	ID         uuid.UUID       `json:"id"`
	SaleID     uuid.UUID       `json:"sale_id"`
	TenderType string          `json:"tender_type"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference"`
}

type paymentSummaryDTO struct {
	Due       decimal.Decimal `json:"due"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
	ChangeDue decimal.Decimal `json:"change_due"`
	Status    string          `json:"status"`
}

type voidPaymentRequest struct {
	Reason string `json:"reason"`
}

// SaleClient cliente HTTP para las operaciones de venta del back-office
type SaleClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewSaleClient crea una nueva instancia del cliente
func NewSaleClient(baseURL string) port.SaleService {
	return &SaleClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// CreateSale abre una venta draft atada a la sesión
func (c *SaleClient) CreateSale(ctx context.Context, storeID, sessionID uuid.UUID, registerID *uuid.UUID, authToken string) (*entity.Sale, error) {
	url := fmt.Sprintf("%s/api/v1/sales", c.baseURL)
	body, err := c.post(ctx, url, storeID, authToken, createSaleRequest{
		StoreID:    storeID,
		SessionID:  sessionID,
		RegisterID: registerID,
	})
	if err != nil {
		return nil, err
	}

	var dto saleDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}
	return saleFromDTO(&dto), nil
}

// AddLine agrega (o acumula) un producto; la línea vuelve canónica
func (c *SaleClient) AddLine(ctx context.Context, storeID, saleID, productID uuid.UUID, quantity int, authToken string) (*entity.SaleLine, error) {
	url := fmt.Sprintf("%s/api/v1/sales/%s/lines", c.baseURL, saleID)
	body, err := c.post(ctx, url, storeID, authToken, addLineRequest{
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, err
	}

	var dto lineDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}
	line := lineFromDTO(&dto)
	return &line, nil
}

// GetSale retorna la vista canónica de la venta con sus líneas
func (c *SaleClient) GetSale(ctx context.Context, storeID, saleID uuid.UUID, authToken string) (*entity.Sale, error) {
	url := fmt.Sprintf("%s/api/v1/sales/%s", c.baseURL, saleID)
	body, err := c.get(ctx, url, storeID, authToken)
	if err != nil {
		return nil, err
	}

	var dto saleDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}
	return saleFromDTO(&dto), nil
}

// PostSale transiciona DRAFT→POSTED
func (c *SaleClient) PostSale(ctx context.Context, storeID, saleID uuid.UUID, authToken string) (*entity.Sale, error) {
	url := fmt.Sprintf("%s/api/v1/sales/%s/post", c.baseURL, saleID)
	body, err := c.post(ctx, url, storeID, authToken, struct{}{})
	if err != nil {
		return nil, err
	}

	var dto saleDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}
	return saleFromDTO(&dto), nil
}

// ApplyPayment aplica un pago contra la venta
func (c *SaleClient) ApplyPayment(ctx context.Context, storeID, saleID uuid.UUID, tenderType entity.TenderType, amount decimal.Decimal, reference, authToken string) (*entity.Payment, error) {
	url := fmt.Sprintf("%s/api/v1/sales/%s/payments", c.baseURL, saleID)
	body, err := c.post(ctx, url, storeID, authToken, applyPaymentRequest{
		TenderType: string(tenderType),
		Amount:     amount,
		Reference:  reference,
	})
	if err != nil {
		return nil, err
	}

	var dto paymentDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}
	return &entity.Payment{
		ID:         dto.ID,
		SaleID:     dto.SaleID,
		TenderType: entity.TenderType(dto.TenderType),
		Amount:     dto.Amount,
		Reference:  dto.Reference,
	}, nil
}

// GetPaymentSummary retorna el resumen de pagos recalculado
func (c *SaleClient) GetPaymentSummary(ctx context.Context, storeID, saleID uuid.UUID, authToken string) (*entity.PaymentSummary, error) {
	url := fmt.Sprintf("%s/api/v1/sales/%s/payment-summary", c.baseURL, saleID)
	body, err := c.get(ctx, url, storeID, authToken)
	if err != nil {
		return nil, err
	}

	var dto paymentSummaryDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}
	return &entity.PaymentSummary{
		Due:       dto.Due,
		Paid:      dto.Paid,
		Remaining: dto.Remaining,
		ChangeDue: dto.ChangeDue,
		Status:    entity.PaymentStatus(dto.Status),
	}, nil
}

// VoidPayment anula un pago con motivo obligatorio
func (c *SaleClient) VoidPayment(ctx context.Context, storeID, paymentID uuid.UUID, reason, authToken string) error {
	url := fmt.Sprintf("%s/api/v1/payments/%s/void", c.baseURL, paymentID)
	_, err := c.post(ctx, url, storeID, authToken, voidPaymentRequest{Reason: reason})
	return err
}

// post ejecuta un POST JSON contra el back-office y retorna el body
func (c *SaleClient) post(ctx context.Context, url string, storeID uuid.UUID, authToken string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	c.setHeaders(req, storeID, authToken)

	return c.do(req)
}

// get ejecuta un GET contra el back-office y retorna el body
func (c *SaleClient) get(ctx context.Context, url string, storeID uuid.UUID, authToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	c.setHeaders(req, storeID, authToken)

	return c.do(req)
}

func (c *SaleClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling backoffice: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", entity.ErrSaleNotFound, string(body))
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("backoffice returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func (c *SaleClient) setHeaders(req *http.Request, storeID uuid.UUID, authToken string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Store-ID", storeID.String())
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}
}

func saleFromDTO(dto *saleDTO) *entity.Sale {
	sale := &entity.Sale{
		ID:             dto.ID,
		DocumentNumber: dto.DocumentNumber,
		Status:         entity.SaleStatus(dto.Status),
		StoreID:        dto.StoreID,
		SessionID:      dto.SessionID,
		RegisterID:     dto.RegisterID,
		Lines:          make([]entity.SaleLine, 0, len(dto.Lines)),
	}
	for _, l := range dto.Lines {
		sale.Lines = append(sale.Lines, lineFromDTO(&l))
	}
	return sale
}

func lineFromDTO(dto *lineDTO) entity.SaleLine {
	return entity.SaleLine{
		ID:        dto.ID,
		ProductID: dto.ProductID,
		Quantity:  dto.Quantity,
		UnitPrice: dto.UnitPrice,
		LineTotal: dto.LineTotal,
	}
}
