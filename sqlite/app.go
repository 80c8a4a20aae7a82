package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/topiclab/topicviz"
)

// Compile-time interface verification.
var _ topicviz.AppService = (*AppService)(nil)

// AppService implements topicviz.AppService using SQLite.
type AppService struct {
	db *DB
}

// NewAppService creates a new AppService.
func NewAppService(db *DB) *AppService {
	return &AppService{db: db}
}

// CreateApp records a generated app. Regenerating a bundle replaces the
// existing catalog record for the same slug and keeps its id.
func (s *AppService) CreateApp(ctx context.Context, app *topicviz.App) error {
	if err := app.Validate(); err != nil {
		return err
	}

	app.ID = uuid.New().String()
	if app.GeneratedAt.IsZero() {
		app.GeneratedAt = time.Now().UTC()
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO apps (id, slug, dataset, method, topic_count, source_path, output_path, score_hash, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			dataset = excluded.dataset,
			method = excluded.method,
			topic_count = excluded.topic_count,
			source_path = excluded.source_path,
			output_path = excluded.output_path,
			score_hash = excluded.score_hash,
			generated_at = excluded.generated_at
		RETURNING id
	`, app.ID, app.Slug, app.Dataset, string(app.Method), app.TopicCount,
		app.SourcePath, app.OutputPath, app.ScoreHash,
		app.GeneratedAt.Format(time.RFC3339)).Scan(&app.ID)

	return err
}

// FindAppBySlug retrieves a catalog record by slug.
func (s *AppService) FindAppBySlug(ctx context.Context, slug string) (*topicviz.App, error) {
	var app topicviz.App
	var method, generatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, dataset, method, topic_count, source_path, output_path, score_hash, generated_at
		FROM apps
		WHERE slug = ?
	`, slug).Scan(&app.ID, &app.Slug, &app.Dataset, &method, &app.TopicCount,
		&app.SourcePath, &app.OutputPath, &app.ScoreHash, &generatedAt)

	if err == sql.ErrNoRows {
		return nil, topicviz.Errorf(topicviz.ENOTFOUND, "app not found")
	}
	if err != nil {
		return nil, err
	}

	app.Method = topicviz.Method(method)
	app.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated_at: %w", err)
	}

	return &app, nil
}

// FindApps retrieves catalog records matching the filter, newest first.
func (s *AppService) FindApps(ctx context.Context, filter topicviz.AppFilter) ([]*topicviz.App, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, slug, dataset, method, topic_count, source_path, output_path, score_hash, generated_at FROM apps WHERE 1=1")

	if filter.Dataset != nil {
		query.WriteString(" AND dataset = ?")
		args = append(args, *filter.Dataset)
	}
	if filter.Method != nil {
		query.WriteString(" AND method = ?")
		args = append(args, string(*filter.Method))
	}

	query.WriteString(" ORDER BY generated_at DESC, slug ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*topicviz.App
	for rows.Next() {
		var app topicviz.App
		var method, generatedAt string

		if err := rows.Scan(&app.ID, &app.Slug, &app.Dataset, &method, &app.TopicCount,
			&app.SourcePath, &app.OutputPath, &app.ScoreHash, &generatedAt); err != nil {
			return nil, err
		}

		app.Method = topicviz.Method(method)
		app.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse generated_at: %w", err)
		}

		apps = append(apps, &app)
	}

	return apps, rows.Err()
}

// DeleteApp permanently removes a catalog record.
func (s *AppService) DeleteApp(ctx context.Context, slug string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM apps WHERE slug = ?", slug)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return topicviz.Errorf(topicviz.ENOTFOUND, "app not found")
	}

	return nil
}
