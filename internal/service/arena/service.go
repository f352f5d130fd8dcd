package arena

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

const reportKeyPrefix = "arena:report:"

type Repository interface {
	SaveReport(ctx context.Context, r *Report) (int64, error)
	GetReport(ctx context.Context, id int64) (*Report, error)
	ListReports(ctx context.Context, limit int) ([]Report, error)
}

type ReportCache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// Service runs matchups and keeps their reports
type Service struct {
	repo     Repository
	cache    ReportCache // Optional, can be nil
	cacheTTL time.Duration
	workers  int
	maxGames int
	maxDepth int
}

func NewService(repo Repository, cache ReportCache, cacheTTL time.Duration, workers, maxGames, maxDepth int) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		workers:  workers,
		maxGames: maxGames,
		maxDepth: maxDepth,
	}
}

// RunAndSave plays a matchup within the service limits and stores the report.
func (s *Service) RunAndSave(ctx context.Context, games int, seed int64, p1, p2 PlayerSettings) (*Report, error) {
	if games > s.maxGames {
		return nil, fmt.Errorf("at most %d games per run, got %d", s.maxGames, games)
	}
	for _, p := range []PlayerSettings{p1, p2} {
		if p.Depth > s.maxDepth {
			return nil, fmt.Errorf("%s: depth %d exceeds limit %d", p.Name, p.Depth, s.maxDepth)
		}
	}

	report, err := Run(ctx, Config{
		Games:   games,
		Seed:    seed,
		Workers: s.workers,
		Player1: p1,
		Player2: p2,
	})
	if err != nil {
		return nil, err
	}

	id, err := s.repo.SaveReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	report.ID = id

	if s.cache != nil {
		if err := s.setReportInCache(ctx, report); err != nil {
			log.Printf("[ARENA] Warning: Failed to store report in cache: %v", err)
		}
	}
	return report, nil
}

// GetReport reads through the cache when one is configured.
func (s *Service) GetReport(ctx context.Context, id int64) (*Report, error) {
	if s.cache != nil {
		report, err := s.getReportFromCache(ctx, id)
		if err == nil && report != nil {
			return report, nil
		}
	}

	report, err := s.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	if report != nil && s.cache != nil {
		if err := s.setReportInCache(ctx, report); err != nil {
			log.Printf("[ARENA] Warning: Failed to populate cache: %v", err)
		}
	}
	return report, nil
}

func (s *Service) ListReports(ctx context.Context, limit int) ([]Report, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListReports(ctx, limit)
}

func reportKey(id int64) string {
	return fmt.Sprintf("%s%d", reportKeyPrefix, id)
}

func (s *Service) setReportInCache(ctx context.Context, r *Report) error {
	data, err := json.Marshal(r.Totals())
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, reportKey(r.ID), data, s.cacheTTL)
}

func (s *Service) getReportFromCache(ctx context.Context, id int64) (*Report, error) {
	data, err := s.cache.Get(ctx, reportKey(id))
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil, err
	}
	return &r, nil
}
