package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kanbanTracker/internal/handlers/dto"

	"github.com/google/uuid"
)

// Client абстрагирует серверный API для доски. Доска работает только
// через этот интерфейс, поэтому в тестах его легко подменить моком.
type Client interface {
	ListTasks(ctx context.Context) ([]dto.TaskResponse, error)
	CreateTask(ctx context.Context, request dto.CreateTaskRequest) (dto.TaskResponse, error)
	UpdateTask(ctx context.Context, id uuid.UUID, request dto.UpdateTaskRequest) (dto.TaskResponse, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type APIError struct {
	StatusCode int
	Code       string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]dto.TaskResponse, error) {
	var tasks []dto.TaskResponse
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, request dto.CreateTaskRequest) (dto.TaskResponse, error) {
	var created dto.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/tasks", request, &created); err != nil {
		return dto.TaskResponse{}, err
	}
	return created, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id uuid.UUID, request dto.UpdateTaskRequest) (dto.TaskResponse, error) {
	var updated dto.TaskResponse
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id.String(), request, &updated); err != nil {
		return dto.TaskResponse{}, err
	}
	return updated, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id.String(), nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("сериализация запроса: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("создание запроса: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Code = "unknown"
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("чтение ответа: %w", err)
		}
	}
	return nil
}
