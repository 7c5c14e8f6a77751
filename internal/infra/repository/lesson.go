package repository

import (
	"context"
	"errors"
	"time"

	"lessonbook/internal/domain/booking"
	"lessonbook/internal/domain/lesson"
	"lessonbook/internal/infra"
	"lessonbook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LessonRepository struct {
	pool *pgxpool.Pool
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

func (r *LessonRepository) Create(ctx context.Context, tx pgx.Tx, l *lesson.Lesson) error {
	slot := l.Slot()

	_, err := tx.Exec(ctx, `
		INSERT INTO lessons (
			id, user_id, instructor_id, instructor_name,
			slot_date, start_time, end_time,
			credits, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID(), l.UserID(), l.InstructorID(), l.InstructorName(),
		slot.Date(), slot.StartTime(), slot.EndTime(),
		l.Credits(), l.Status().String(), l.CreatedAt(), l.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert lesson", err)
	}
	return nil
}

// FindByID returns (nil, nil) when the lesson does not exist.
func (r *LessonRepository) FindByID(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, instructor_id, instructor_name,
		       slot_date, start_time, end_time,
		       credits, status, created_at, updated_at, cancelled_at
		FROM lessons
		WHERE id = $1`,
		id,
	)

	l, err := scanLesson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find lesson by ID", err)
	}
	return l, nil
}

func (r *LessonRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.LessonRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, instructor_id, instructor_name,
		       slot_date, start_time, end_time,
		       credits, status, created_at, cancelled_at
		FROM lessons
		WHERE user_id = $1
		ORDER BY slot_date, start_time`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find lessons by user", err)
	}
	defer rows.Close()

	var result []*readmodel.LessonRM
	for rows.Next() {
		var (
			rm          readmodel.LessonRM
			slotDate    time.Time
			cancelledAt *time.Time
		)
		err := rows.Scan(
			&rm.ID, &rm.InstructorID, &rm.InstructorName,
			&slotDate, &rm.Slot.StartTime, &rm.Slot.EndTime,
			&rm.Credits, &rm.Status, &rm.CreatedAt, &cancelledAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lesson row", err)
		}
		rm.Slot.Date = slotDate.Format(booking.SlotDateLayout)
		rm.CancelledAt = cancelledAt
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lesson rows", err)
	}

	return result, nil
}

// MarkCancelled transitions confirmed → cancelled. The status condition in the
// WHERE clause is the refund idempotency guard: a second cancellation of the
// same booking matches no row and reports false.
func (r *LessonRepository) MarkCancelled(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE lessons
		SET status = $2, cancelled_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4`,
		id, lesson.StatusCancelled.String(), at, lesson.StatusConfirmed.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark lesson cancelled", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanLesson(row pgx.Row) (*lesson.Lesson, error) {
	var (
		id, userID, instructorID  uuid.UUID
		instructorName            string
		slotDate                  time.Time
		startTime, endTime        string
		credits                   int
		status                    string
		createdAt, updatedAt      time.Time
		cancelledAt               *time.Time
	)

	err := row.Scan(
		&id, &userID, &instructorID, &instructorName,
		&slotDate, &startTime, &endTime,
		&credits, &status, &createdAt, &updatedAt, &cancelledAt,
	)
	if err != nil {
		return nil, err
	}

	slot := booking.ReconstructSlot(slotDate.Format(booking.SlotDateLayout), startTime, endTime)

	return lesson.ReconstructLesson(
		id, userID, instructorID, instructorName,
		slot, credits, lesson.Status(status),
		createdAt, updatedAt, cancelledAt,
	), nil
}
