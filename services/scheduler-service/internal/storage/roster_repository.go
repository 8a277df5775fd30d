package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flightops/flightline/libs/db"
	"github.com/flightops/flightline/services/scheduler-service/internal/model"
)

type RosterRepository struct {
	pool *db.Pool
}

func NewRosterRepository(pool *db.Pool) *RosterRepository {
	return &RosterRepository{pool: pool}
}

// ListForDate returns every roster rule stored for the given duty date
// ("2006-01-02"), including inactive and voided ones; the availability index
// filters those out so the behavior stays the same no matter which source
// the rules come from.
func (r *RosterRepository) ListForDate(ctx context.Context, dutyDate string) ([]model.RosterRule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, instructor_id::text, duty_date::text, start_time, end_time, is_active, voided_at
		FROM roster_rules
		WHERE duty_date = $1
		ORDER BY instructor_id, start_time
	`, dutyDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []model.RosterRule
	for rows.Next() {
		var rule model.RosterRule
		var voidedAt *time.Time
		if err := rows.Scan(
			&rule.ID,
			&rule.InstructorID,
			&rule.DutyDate,
			&rule.StartTime,
			&rule.EndTime,
			&rule.IsActive,
			&voidedAt,
		); err != nil {
			return nil, err
		}
		rule.VoidedAt = voidedAt
		rules = append(rules, rule)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return rules, nil
}

func (r *RosterRepository) CreateRule(ctx context.Context, rule *model.RosterRule) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO roster_rules (id, instructor_id, duty_date, start_time, end_time, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, rule.InstructorID, rule.DutyDate, rule.StartTime, rule.EndTime, rule.IsActive)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *RosterRepository) VoidRule(ctx context.Context, ruleID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE roster_rules
		SET voided_at = now()
		WHERE id = $1 AND voided_at IS NULL
	`, ruleID)
	return err
}
