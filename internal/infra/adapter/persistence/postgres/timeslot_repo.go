package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

type TimeSlotRepo struct {
	db *sql.DB
}

func NewTimeSlotRepo(db *sql.DB) repository.TimeSlotRepository {
	return &TimeSlotRepo{db: db}
}

func (repo *TimeSlotRepo) Get(ctx context.Context, id int64) (*entity.TimeSlot, error) {
	const query = `
SELECT id, page_id, day_of_week, time_of_day, recurring
FROM time_slots
WHERE id = $1
LIMIT 1`
	var slot entity.TimeSlot
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&slot.ID, &slot.PageID, &slot.DayOfWeek, &slot.TimeOfDay, &slot.Recurring)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &slot, nil
}

func (repo *TimeSlotRepo) ListByPage(ctx context.Context, pageID int64) ([]*entity.TimeSlot, error) {
	const query = `
SELECT id, page_id, day_of_week, time_of_day, recurring
FROM time_slots
WHERE page_id = $1
ORDER BY day_of_week ASC, time_of_day ASC`
	rows, err := repo.db.QueryContext(ctx, query, pageID)
	if err != nil {
		return nil, fmt.Errorf("ListByPage: %w", err)
	}
	defer func() { _ = rows.Close() }()

	slots := make([]*entity.TimeSlot, 0, 8)
	for rows.Next() {
		var slot entity.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.PageID, &slot.DayOfWeek, &slot.TimeOfDay, &slot.Recurring); err != nil {
			return nil, fmt.Errorf("ListByPage: Scan: %w", err)
		}
		slots = append(slots, &slot)
	}
	return slots, rows.Err()
}

func (repo *TimeSlotRepo) Create(ctx context.Context, slot *entity.TimeSlot) error {
	const query = `
INSERT INTO time_slots (page_id, day_of_week, time_of_day, recurring)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		slot.PageID, slot.DayOfWeek, slot.TimeOfDay, slot.Recurring).Scan(&slot.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *TimeSlotRepo) Update(ctx context.Context, slot *entity.TimeSlot) error {
	const query = `
UPDATE time_slots SET
       day_of_week = $1,
       time_of_day = $2,
       recurring   = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query,
		slot.DayOfWeek, slot.TimeOfDay, slot.Recurring, slot.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *TimeSlotRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM time_slots WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
