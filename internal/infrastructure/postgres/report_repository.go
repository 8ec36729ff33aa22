package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación del puerto ReportRepository sobre PostgreSQL.
// La clave primaria (stream, date_key) materializa la idempotencia por día.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Upsert guarda el reporte del día: el segundo guardado del mismo día sobrescribe.
func (r *ReportRepo) Upsert(ctx context.Context, report *entity.DailyReport) error {
	query := `
		INSERT INTO daily_reports (stream, date_key, date, total_assets, lines, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (stream, date_key)
		DO UPDATE SET date = EXCLUDED.date, total_assets = EXCLUDED.total_assets,
			lines = EXCLUDED.lines, created_at = EXCLUDED.created_at`
	_, err := r.q.Exec(ctx, query,
		report.Stream, report.DateKey, report.Date, report.TotalAssets, report.Lines, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert daily report: %w", err)
	}
	return nil
}

// GetByDateKey obtiene el reporte de un día del stream.
func (r *ReportRepo) GetByDateKey(ctx context.Context, stream entity.Stream, dateKey string) (*entity.DailyReport, error) {
	query := `
		SELECT stream, date_key, date, total_assets, lines, created_at
		FROM daily_reports WHERE stream = $1 AND date_key = $2`
	var report entity.DailyReport
	err := r.q.QueryRow(ctx, query, stream, dateKey).Scan(
		&report.Stream, &report.DateKey, &report.Date, &report.TotalAssets, &report.Lines, &report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get daily report: %w", err)
	}
	return &report, nil
}

// ListRecent devuelve hasta limit reportes, el más reciente primero.
func (r *ReportRepo) ListRecent(ctx context.Context, stream entity.Stream, limit int) ([]*entity.DailyReport, error) {
	query := `
		SELECT stream, date_key, date, total_assets, lines, created_at
		FROM daily_reports WHERE stream = $1
		ORDER BY date_key DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, stream, limit)
	if err != nil {
		return nil, fmt.Errorf("list daily reports: %w", err)
	}
	defer rows.Close()

	var reports []*entity.DailyReport
	for rows.Next() {
		var report entity.DailyReport
		if err := rows.Scan(
			&report.Stream, &report.DateKey, &report.Date, &report.TotalAssets, &report.Lines, &report.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan daily report: %w", err)
		}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list daily reports: %w", err)
	}
	return reports, nil
}
