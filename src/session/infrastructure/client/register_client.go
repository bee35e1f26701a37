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

	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/session/domain/port"
)

// registerDTO caja como la devuelve el back-office
type registerDTO struct {
	ID             uuid.UUID   `json:"id"`
	Number         int         `json:"number"`
	Name           string      `json:"name"`
	CurrentSession *sessionDTO `json:"current_session"`
}

// sessionDTO sesión anidada en el listado de cajas
type sessionDTO struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
	UserID uuid.UUID `json:"user_id"`
}

type listRegistersResponse struct {
	Registers []registerDTO `json:"registers"`
}

type openShiftRequest struct {
	UserID      uuid.UUID       `json:"user_id"`
	OpeningCash decimal.Decimal `json:"opening_cash"`
}

type openShiftResponse struct {
	SessionID      uuid.UUID `json:"session_id"`
	RegisterNumber int       `json:"register_number"`
}

type closeShiftRequest struct {
	ClosingCash decimal.Decimal `json:"closing_cash"`
	Notes       string          `json:"notes,omitempty"`
}

type closeShiftResponse struct {
	ClosingCash  decimal.Decimal  `json:"closing_cash"`
	ExpectedCash *decimal.Decimal `json:"expected_cash"`
	Variance     *decimal.Decimal `json:"variance"`
	ClosedAt     time.Time        `json:"closed_at"`
}

// RegisterClient cliente HTTP para las operaciones de caja del back-office
type RegisterClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewRegisterClient crea una nueva instancia del cliente
func NewRegisterClient(baseURL string) port.RegisterService {
	return &RegisterClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// ListRegisters obtiene las cajas de la tienda con su sesión abierta anidada
func (c *RegisterClient) ListRegisters(ctx context.Context, storeID uuid.UUID, authToken string) ([]entity.Register, error) {
	url := fmt.Sprintf("%s/api/v1/registers?store_id=%s", c.baseURL, storeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	c.setHeaders(req, storeID, authToken)

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

	var listResp listRegistersResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	registers := make([]entity.Register, 0, len(listResp.Registers))
	for _, dto := range listResp.Registers {
		register := entity.Register{
			ID:     dto.ID,
			Number: dto.Number,
			Name:   dto.Name,
		}
		if dto.CurrentSession != nil {
			register.CurrentSession = &entity.RegisterSession{
				ID:             dto.CurrentSession.ID,
				RegisterID:     dto.ID,
				RegisterNumber: dto.Number,
				UserID:         dto.CurrentSession.UserID,
				StoreID:        storeID,
				Status:         entity.SessionStatus(dto.CurrentSession.Status),
			}
		}
		registers = append(registers, register)
	}

	return registers, nil
}

// OpenShift abre un turno sobre la caja. El 409 del check-and-set del
// servidor se traduce a entity.ErrRegisterInUse.
func (c *RegisterClient) OpenShift(ctx context.Context, storeID, registerID, userID uuid.UUID, openingCash decimal.Decimal, authToken string) (*entity.RegisterSession, error) {
	jsonData, err := json.Marshal(openShiftRequest{
		UserID:      userID,
		OpeningCash: openingCash,
	})
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/registers/%s/shifts", c.baseURL, registerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	c.setHeaders(req, storeID, authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling backoffice: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusConflict {
		return nil, fmt.Errorf("%w: %s", entity.ErrRegisterInUse, string(body))
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", entity.ErrRegisterNotFound, registerID)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("backoffice returned status %d: %s", resp.StatusCode, string(body))
	}

	var openResp openShiftResponse
	if err := json.Unmarshal(body, &openResp); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &entity.RegisterSession{
		ID:             openResp.SessionID,
		RegisterID:     registerID,
		RegisterNumber: openResp.RegisterNumber,
		UserID:         userID,
		StoreID:        storeID,
		Status:         entity.SessionStatusOpen,
	}, nil
}

// CloseShift cierra la sesión con el conteo de efectivo. expected_cash y
// variance pueden venir en null si el servidor no pudo calcularlos.
func (c *RegisterClient) CloseShift(ctx context.Context, storeID, sessionID uuid.UUID, closingCash decimal.Decimal, notes, authToken string) (*entity.ShiftCloseResult, error) {
	jsonData, err := json.Marshal(closeShiftRequest{
		ClosingCash: closingCash,
		Notes:       notes,
	})
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/shift-sessions/%s/close", c.baseURL, sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	c.setHeaders(req, storeID, authToken)

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
		return nil, fmt.Errorf("%w: %s", entity.ErrSessionNotFound, sessionID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backoffice returned status %d: %s", resp.StatusCode, string(body))
	}

	var closeResp closeShiftResponse
	if err := json.Unmarshal(body, &closeResp); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &entity.ShiftCloseResult{
		SessionID:    sessionID,
		ClosingCash:  closeResp.ClosingCash,
		ExpectedCash: closeResp.ExpectedCash,
		Variance:     closeResp.Variance,
		Notes:        notes,
		ClosedAt:     closeResp.ClosedAt,
	}, nil
}

func (c *RegisterClient) setHeaders(req *http.Request, storeID uuid.UUID, authToken string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Store-ID", storeID.String())
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}
}
