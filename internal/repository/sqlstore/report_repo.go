package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mshenoda/connect4/internal/domain"
	"github.com/mshenoda/connect4/internal/service/arena"
)

const insertReport = `
INSERT INTO arena_reports (player1, player2, games, player1_wins, player2_wins, draws, avg_moves, total_seconds, seed, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id
`

const selectReport = `
SELECT id, player1, player2, games, player1_wins, player2_wins, draws, avg_moves, total_seconds, seed, created_at
FROM arena_reports
`

type ReportRepo struct {
	DB *sqlx.DB
}

func NewReportRepo(db *sqlx.DB) *ReportRepo {
	return &ReportRepo{DB: db}
}

// SaveReport stores the totals of a report; per game series are not kept.
func (r *ReportRepo) SaveReport(ctx context.Context, report *arena.Report) (int64, error) {
	var id int64
	err := r.DB.QueryRowxContext(ctx, r.DB.Rebind(insertReport),
		report.Player1, report.Player2, report.Games,
		report.Player1Wins, report.Player2Wins, report.Draws,
		report.AvgMoves, report.TotalSeconds, report.Seed, report.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert arena report: %w", err)
	}
	return id, nil
}

func (r *ReportRepo) GetReport(ctx context.Context, id int64) (*arena.Report, error) {
	var report arena.Report
	err := r.DB.GetContext(ctx, &report, r.DB.Rebind(selectReport+"WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get arena report %d: %w", id, err)
	}
	return &report, nil
}

// ListReports returns the most recent reports first
func (r *ReportRepo) ListReports(ctx context.Context, limit int) ([]arena.Report, error) {
	reports := []arena.Report{}
	err := r.DB.SelectContext(ctx, &reports, r.DB.Rebind(selectReport+"ORDER BY id DESC LIMIT ?"), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list arena reports: %w", err)
	}
	return reports, nil
}
