package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/tasks/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/tasks/domain/port"
)

type taskDTO struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	DueAt     *time.Time `json:"due_at"`
	CreatedAt time.Time  `json:"created_at"`
}

type listTasksResponse struct {
	Tasks []taskDTO `json:"tasks"`
}

type listAnnouncementsResponse struct {
	Announcements []taskDTO `json:"announcements"`
}

// TaskClient cliente HTTP de tareas y anuncios del back-office
type TaskClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewTaskClient crea una nueva instancia del cliente
func NewTaskClient(baseURL string) port.TaskService {
	return &TaskClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// ListPendingTasks retorna las tareas pendientes de la tienda
func (c *TaskClient) ListPendingTasks(ctx context.Context, storeID uuid.UUID, authToken string) ([]entity.Task, error) {
	url := fmt.Sprintf("%s/api/v1/tasks?store_id=%s&status=pending", c.baseURL, storeID)
	body, err := c.get(ctx, url, storeID, authToken)
	if err != nil {
		return nil, err
	}

	var resp listTasksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}
	return fromDTOs(resp.Tasks, entity.KindTask), nil
}

// ListAnnouncements retorna los anuncios vigentes de la tienda
func (c *TaskClient) ListAnnouncements(ctx context.Context, storeID uuid.UUID, authToken string) ([]entity.Task, error) {
	url := fmt.Sprintf("%s/api/v1/announcements?store_id=%s", c.baseURL, storeID)
	body, err := c.get(ctx, url, storeID, authToken)
	if err != nil {
		return nil, err
	}

	var resp listAnnouncementsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}
	return fromDTOs(resp.Announcements, entity.KindAnnouncement), nil
}

func (c *TaskClient) get(ctx context.Context, url string, storeID uuid.UUID, authToken string) ([]byte, error) {
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
	return body, nil
}

func fromDTOs(dtos []taskDTO, kind entity.TaskKind) []entity.Task {
	tasks := make([]entity.Task, 0, len(dtos))
	for _, dto := range dtos {
		tasks = append(tasks, entity.Task{
			ID:        dto.ID,
			Kind:      kind,
			Title:     dto.Title,
			Body:      dto.Body,
			DueAt:     dto.DueAt,
			CreatedAt: dto.CreatedAt,
		})
	}
	return tasks
}
