package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaiso/hare/internal/dispatch"
)

// DispatchRecord — строка журнала диспетчеризации.
type DispatchRecord struct {
	ID         uuid.UUID `json:"id"`
	Outcome    string    `json:"outcome"`
	Handler    string    `json:"handler,omitempty"`
	ScriptPath string    `json:"script_path,omitempty"`
	ExitCode   *int      `json:"exit_code,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// JournalRepo — репозиторий журнала диспетчеризации.
// Реализует dispatch.Journal.
type JournalRepo struct {
	pool *pgxpool.Pool
}

// NewJournalRepo создаёт новый JournalRepo.
func NewJournalRepo(pool *pgxpool.Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

// Record записывает результат диспетчеризации одного сообщения.
func (r *JournalRepo) Record(ctx context.Context, o dispatch.Outcome) error {
	var exitCode *int
	if o.Kind == dispatch.OutcomeInvoked {
		code := o.ExitCode
		exitCode = &code
	}

	var errMsg string
	if o.Err != nil {
		errMsg = o.Err.Error()
	}

	query := `
		INSERT INTO dispatches (id, outcome, handler, script_path, exit_code, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		uuid.New(),
		string(o.Kind),
		nullString(o.Handler),
		nullString(o.ScriptPath),
		exitCode,
		nullString(errMsg),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

// GetByID возвращает запись журнала по ID.
// Если записи нет, возвращает ErrNotFound.
func (r *JournalRepo) GetByID(ctx context.Context, id uuid.UUID) (*DispatchRecord, error) {
	query := `
		SELECT id, outcome, handler, script_path, exit_code, error, created_at
		FROM dispatches
		WHERE id = $1
	`

	var rec DispatchRecord
	var handler, scriptPath, errMsg *string

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.Outcome,
		&handler,
		&scriptPath,
		&rec.ExitCode,
		&errMsg,
		&rec.CreatedAt,
	)
	if err != nil {
		if err = mapScanError(err); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get dispatch: %w", err)
	}

	rec.Handler = deref(handler)
	rec.ScriptPath = deref(scriptPath)
	rec.Error = deref(errMsg)

	return &rec, nil
}

// ListRecent возвращает последние записи журнала, новые первыми.
func (r *JournalRepo) ListRecent(ctx context.Context, limit int) ([]DispatchRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, outcome, handler, script_path, exit_code, error, created_at
		FROM dispatches
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}
	defer rows.Close()

	var records []DispatchRecord
	for rows.Next() {
		var rec DispatchRecord
		var handler, scriptPath, errMsg *string

		if err := rows.Scan(
			&rec.ID,
			&rec.Outcome,
			&handler,
			&scriptPath,
			&rec.ExitCode,
			&errMsg,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}

		rec.Handler = deref(handler)
		rec.ScriptPath = deref(scriptPath)
		rec.Error = deref(errMsg)

		records = append(records, rec)
	}

	return records, rows.Err()
}

// PruneOlderThan удаляет записи старше указанного момента.
// Возвращает количество удалённых строк.
func (r *JournalRepo) PruneOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dispatches WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("prune dispatches: %w", err)
	}
	return tag.RowsAffected(), nil
}

// nullString возвращает nil для пустой строки (NULL в БД).
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// deref разыменовывает *string, nil — пустая строка.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
