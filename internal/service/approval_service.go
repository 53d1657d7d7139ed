package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/rs/zerolog/log"
)

// Runner abstracts the notebook-run client for testing.
type Runner interface {
	SubmitAndWait(ctx context.Context, name string, params map[string]string) (string, error)
}

// ApprovalService packages edited rows into approval submissions and routes
// status changes through the notebook-run API.
type ApprovalService struct {
	runner Runner
}

func NewApprovalService(runner Runner) *ApprovalService {
	return &ApprovalService{runner: runner}
}

// FilterChanged keeps only rows the user actually edited; the engine marks
// those with NewAlteration when it applies a mutable-field patch.
func FilterChanged(rows []domain.CatalogRow) []domain.CatalogRow {
	changed := make([]domain.CatalogRow, 0, len(rows))
	for i := range rows {
		if rows[i].NewAlteration {
			changed = append(changed, rows[i])
		}
	}
	return changed
}

// SubmitCatlote sends the changed rows of a simulation to the approval
// workflow. Returns an error when nothing was edited: an empty submission
// would create an approval request with no content.
func (s *ApprovalService) SubmitCatlote(ctx context.Context, userToken string, rows []domain.CatalogRow) (string, error) {
	changed := FilterChanged(rows)
	if len(changed) == 0 {
		return "", fmt.Errorf("no changed rows to submit")
	}

	tableJSON, err := json.Marshal(changed)
	if err != nil {
		return "", fmt.Errorf("failed to encode approval payload: %w", err)
	}

	params := map[string]string{
		"user_token":    userToken,
		"outputCatlote": string(tableJSON),
	}

	out, err := s.runner.SubmitAndWait(ctx, "catlote", params)
	if err != nil {
		return "", err
	}

	log.Info().Int("rows", len(changed)).Msg("catlote changes submitted for approval")
	return out, nil
}

// UpdateStatus accepts or rejects a pending change set. Status "1" approves,
// "2" rejects.
func (s *ApprovalService) UpdateStatus(ctx context.Context, userToken, changeID, status, targetTable string) error {
	if changeID == "" {
		return fmt.Errorf("change id is required")
	}
	if status != "1" && status != "2" {
		return fmt.Errorf("invalid approval status %q", status)
	}

	params := map[string]string{
		"user_token":   userToken,
		"change_id":    changeID,
		"status":       status,
		"target_table": targetTable,
	}

	if _, err := s.runner.SubmitAndWait(ctx, "approval_status", params); err != nil {
		return err
	}

	log.Info().Str("change_id", changeID).Str("status", status).Msg("approval status updated")
	return nil
}
