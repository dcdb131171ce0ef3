package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"restoran/feedback-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const feedbackColumns = `id, name, phone, message, rating, is_read, created_at`

func scanFeedback(row interface{ Scan(...any) error }, f *domain.Feedback) error {
	return row.Scan(&f.ID, &f.Name, &f.Phone, &f.Message, &f.Rating, &f.IsRead, &f.CreatedAt)
}

func (r *PostgresRepository) InsertFeedback(ctx context.Context, feedback *domain.Feedback) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO feedback (name, phone, message, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, feedback.Name, feedback.Phone, feedback.Message, feedback.Rating).
		Scan(&feedback.ID, &feedback.CreatedAt)
}

func (r *PostgresRepository) ListFeedback(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+feedbackColumns+`
		FROM feedback
		WHERE NOT $1 OR NOT is_read
		ORDER BY created_at DESC, id DESC
	`, filter.UnreadOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := []domain.Feedback{}
	for rows.Next() {
		var f domain.Feedback
		if err := scanFeedback(rows, &f); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

func (r *PostgresRepository) SetRead(ctx context.Context, id int64, read bool) (*domain.Feedback, error) {
	var f domain.Feedback
	row := r.DB.QueryRowContext(ctx, `
		UPDATE feedback SET is_read = $1
		WHERE id = $2
		RETURNING `+feedbackColumns, read, id)
	if err := scanFeedback(row, &f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feedback %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &f, nil
}

func (r *PostgresRepository) DeleteFeedback(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("feedback %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RatingDistribution counts feedback per rating, "0" holding unrated ones.
func (r *PostgresRepository) RatingDistribution(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT rating, COUNT(*) as count
		FROM feedback
		GROUP BY rating
		ORDER BY rating
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := map[string]int{}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		distribution[strconv.Itoa(rating)] = count
	}
	return distribution, rows.Err()
}
