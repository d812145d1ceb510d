package repository

import (
	"context"
	"fmt"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

// ListMunicipalities возвращает все муниципалитеты с координатами.
func (s *Storage) ListMunicipalities(ctx context.Context) ([]*models.Municipality, error) {
	const op = "storage.ListMunicipalities"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, province, district, ward, latitude, longitude
			  FROM municipalities
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Municipality
	for rows.Next() {
		var m models.Municipality
		if err = rows.Scan(&m.ID, &m.Name, &m.Province, &m.District,
			&m.Ward, &m.Latitude, &m.Longitude); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateMunicipality вставляет новый муниципалитет и возвращает его ID.
func (s *Storage) CreateMunicipality(ctx context.Context, m models.Municipality) (int64, error) {
	const op = "storage.CreateMunicipality"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO municipalities (name, province, district, ward, latitude, longitude)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query,
		m.Name, m.Province, m.District, m.Ward, m.Latitude, m.Longitude).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
