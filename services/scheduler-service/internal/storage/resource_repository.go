package storage

import (
	"context"

	"github.com/flightops/flightline/libs/db"
	"github.com/flightops/flightline/services/scheduler-service/internal/model"
)

type ResourceRepository struct {
	pool *db.Pool
}

func NewResourceRepository(pool *db.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

// ListTimelineResources returns the scheduler's row set: active instructors
// first, then the active fleet, each in display order.
func (r *ResourceRepository) ListTimelineResources(ctx context.Context) ([]model.Resource, error) {
	instructors, err := r.listInstructors(ctx)
	if err != nil {
		return nil, err
	}
	aircraft, err := r.listAircraft(ctx)
	if err != nil {
		return nil, err
	}
	return append(instructors, aircraft...), nil
}

func (r *ResourceRepository) listInstructors(ctx context.Context) ([]model.Resource, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, full_name
		FROM instructors
		WHERE is_active
		ORDER BY full_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []model.Resource
	for rows.Next() {
		res := model.Resource{Kind: model.ResourceInstructor}
		if err := rows.Scan(&res.ID, &res.Label); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return resources, nil
}

func (r *ResourceRepository) listAircraft(ctx context.Context) ([]model.Resource, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, tail_number
		FROM aircraft
		WHERE is_active
		ORDER BY tail_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []model.Resource
	for rows.Next() {
		res := model.Resource{Kind: model.ResourceAircraft}
		if err := rows.Scan(&res.ID, &res.Label); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return resources, nil
}
