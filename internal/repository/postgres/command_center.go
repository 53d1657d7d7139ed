package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/pricingdesk/pricing-console/internal/dataset"
	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// commandCenterWorkers bounds the query fan-out.
const commandCenterWorkers = 11

type commandCenterRepository struct {
	db *DB
}

func NewCommandCenterRepository(db *DB) *commandCenterRepository {
	return &commandCenterRepository{db: db}
}

// FetchAll pulls every command-center view concurrently. The views are
// independent and read-only, so results join into a map keyed by process.
func (r *commandCenterRepository) FetchAll(ctx context.Context) (map[domain.Process]*dataset.Frame, error) {
	processes := domain.CommandCenterProcesses()

	var mu sync.Mutex
	frames := make(map[domain.Process]*dataset.Frame, len(processes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(commandCenterWorkers)

	for _, process := range processes {
		g.Go(func() error {
			frame, err := r.fetchFrame(gctx, process)
			if err != nil {
				return err
			}
			mu.Lock()
			frames[process] = frame
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().Int("views", len(frames)).Msg("command center fetch complete")
	return frames, nil
}

func (r *commandCenterRepository) fetchFrame(ctx context.Context, process domain.Process) (*dataset.Frame, error) {
	table, err := process.Table()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", process, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", process, err)
	}

	frame := &dataset.Frame{Columns: columns}
	for rows.Next() {
		row := dataset.Row{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", process, err)
		}
		frame.Rows = append(frame.Rows, row)
	}
	return frame, rows.Err()
}
