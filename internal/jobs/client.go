package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pricingdesk/pricing-console/internal/config"
	"github.com/rs/zerolog/log"
)

// Run lifecycle states of the notebook-run API.
const (
	StateTerminated    = "TERMINATED"
	StateInternalError = "INTERNAL_ERROR"
	ResultSuccess      = "SUCCESS"
)

// Client talks to the managed notebook-execution service that persists
// approved changes back to the warehouse: submit a run, poll it to a
// terminal state, read its output.
type Client struct {
	baseURL          string
	token            string
	clusterID        string
	notebookBasePath string
	httpClient       *http.Client
	pollInterval     time.Duration
}

func NewClient(cfg config.JobsConfig) *Client {
	interval := time.Duration(cfg.PollIntervalSec) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL:          cfg.BaseURL,
		token:            cfg.Token,
		clusterID:        cfg.ClusterID,
		notebookBasePath: cfg.NotebookBasePath,
		httpClient:       &http.Client{Timeout: timeout},
		pollInterval:     interval,
	}
}

// RunState is the lifecycle/result pair reported by runs/get.
type RunState struct {
	LifeCycleState string `json:"life_cycle_state"`
	ResultState    string `json:"result_state"`
}

type runStatusResponse struct {
	State RunState `json:"state"`
}

type runSubmitResponse struct {
	RunID int64 `json:"run_id"`
}

type runOutputResponse struct {
	NotebookOutput struct {
		Result string `json:"result"`
	} `json:"notebook_output"`
}

// Submit starts a notebook run and returns its run id.
func (c *Client) Submit(ctx context.Context, name string, params map[string]string) (int64, error) {
	nb, err := LookupNotebook(name)
	if err != nil {
		return 0, err
	}

	payload := map[string]any{
		"existing_cluster_id": c.clusterID,
		"notebook_task": map[string]any{
			"notebook_path":   fmt.Sprintf("%s/%s", c.notebookBasePath, nb.PathSuffix),
			"base_parameters": params,
		},
	}

	var resp runSubmitResponse
	if err := c.do(ctx, http.MethodPost, "/api/2.0/jobs/runs/submit", payload, &resp); err != nil {
		return 0, fmt.Errorf("failed to submit %s run: %w", name, err)
	}

	log.Info().Str("notebook", name).Int64("run_id", resp.RunID).Msg("notebook run submitted")
	return resp.RunID, nil
}

// WaitForRun polls the run at a fixed interval until it reaches a terminal
// state or the context is cancelled.
func (c *Client) WaitForRun(ctx context.Context, runID int64) (RunState, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		var status runStatusResponse
		path := fmt.Sprintf("/api/2.0/jobs/runs/get?run_id=%d", runID)
		if err := c.do(ctx, http.MethodGet, path, nil, &status); err != nil {
			return RunState{}, fmt.Errorf("failed to poll run %d: %w", runID, err)
		}

		switch status.State.LifeCycleState {
		case StateTerminated:
			return status.State, nil
		case StateInternalError:
			return status.State, fmt.Errorf("run %d hit an internal error", runID)
		}

		log.Debug().Int64("run_id", runID).Str("state", status.State.LifeCycleState).
			Msg("notebook run still in progress")

		select {
		case <-ctx.Done():
			return RunState{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunOutput reads the notebook output of a finished run.
func (c *Client) RunOutput(ctx context.Context, runID int64) (string, error) {
	var out runOutputResponse
	path := fmt.Sprintf("/api/2.0/jobs/runs/get-output?run_id=%d", runID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", fmt.Errorf("failed to read output of run %d: %w", runID, err)
	}
	return out.NotebookOutput.Result, nil
}

// SubmitAndWait submits a run, waits for a terminal state and returns the
// notebook output on success.
func (c *Client) SubmitAndWait(ctx context.Context, name string, params map[string]string) (string, error) {
	runID, err := c.Submit(ctx, name, params)
	if err != nil {
		return "", err
	}

	state, err := c.WaitForRun(ctx, runID)
	if err != nil {
		return "", err
	}
	if state.ResultState != ResultSuccess {
		return "", fmt.Errorf("run %d finished with result %q", runID, state.ResultState)
	}

	return c.RunOutput(ctx, runID)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
