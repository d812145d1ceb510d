package repository

import (
	"context"
	"fmt"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// CreateReport сохраняет жалобу пользователя.
func (s *Storage) CreateReport(ctx context.Context, report models.Report) error {
	const op = "storage.CreateReport"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO reports (id, reporter_id, reported_user_id, reported_message_id,
				  reason, details, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := s.DB.ExecContext(ctx, query,
		report.ID, report.ReporterID, report.ReportedUserID, report.ReportedMessageID,
		report.Reason, report.Details, report.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListReports возвращает все жалобы, новые первыми.
func (s *Storage) ListReports(ctx context.Context) ([]*models.Report, error) {
	const op = "storage.ListReports"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, reporter_id, reported_user_id, reported_message_id,
				  reason, details, created_at
			  FROM reports
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Report
	for rows.Next() {
		var r models.Report
		if err = rows.Scan(&r.ID, &r.ReporterID, &r.ReportedUserID, &r.ReportedMessageID,
			&r.Reason, &r.Details, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
