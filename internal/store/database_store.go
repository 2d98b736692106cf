package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nstepanov-dev/shortener/internal/config/db"
	"github.com/nstepanov-dev/shortener/internal/model"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolationCode = "23505"

// DatabaseStore реализует Store интерфейс для PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	// Получаем pgxpool.Pool из адаптера
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// CreateURL сохраняет пару код-URL. Уникальность кода гарантирует
// ограничение на колонке short_code: при нарушении возвращается ErrCodeExists
func (ds *DatabaseStore) CreateURL(ctx context.Context, code model.Code, url model.URL) (model.URLMapping, error) {
	query := `
		INSERT INTO urls (original_url, short_code)
		VALUES ($1, $2)
		RETURNING id, created_at, clicks
	`

	mapping := model.URLMapping{
		OriginalURL: url,
		ShortCode:   code,
	}

	err := ds.pool.QueryRow(ctx, query, string(url), string(code)).
		Scan(&mapping.ID, &mapping.CreatedAt, &mapping.Clicks)
	if err != nil {
		if isUniqueViolation(err) {
			return model.URLMapping{}, fmt.Errorf("key %s: %w", code, ErrCodeExists)
		}
		return model.URLMapping{}, fmt.Errorf("failed to insert into database: %w", err)
	}

	return mapping, nil
}

// CreateBatch сохраняет несколько пар код-URL в одной транзакции
func (ds *DatabaseStore) CreateBatch(ctx context.Context, urls URLMap) error {
	tx, err := ds.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO urls (original_url, short_code)
		VALUES ($1, $2)
	`

	for code, url := range urls {
		if _, err := tx.Exec(ctx, query, string(url), string(code)); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("key %s: %w", code, ErrCodeExists)
			}
			return fmt.Errorf("failed to insert into database: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FindByCode возвращает запись по короткому коду
func (ds *DatabaseStore) FindByCode(ctx context.Context, code model.Code) (model.URLMapping, error) {
	query := `
		SELECT id, original_url, short_code, created_at, clicks
		FROM urls
		WHERE short_code = $1
	`

	var mapping model.URLMapping
	err := ds.pool.QueryRow(ctx, query, string(code)).
		Scan(&mapping.ID, &mapping.OriginalURL, &mapping.ShortCode, &mapping.CreatedAt, &mapping.Clicks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.URLMapping{}, fmt.Errorf("key %s: %w", code, ErrNotFound)
		}
		return model.URLMapping{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return mapping, nil
}

// FindCodeByURL возвращает первый выданный код для оригинального URL.
// Уникального ограничения на original_url нет, поэтому при гонке
// возможны несколько кодов: берётся самый ранний
func (ds *DatabaseStore) FindCodeByURL(ctx context.Context, url model.URL) (model.Code, error) {
	query := `
		SELECT short_code
		FROM urls
		WHERE original_url = $1
		ORDER BY id
		LIMIT 1
	`

	var code string
	err := ds.pool.QueryRow(ctx, query, string(url)).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("url %s: %w", url, ErrNotFound)
		}
		return "", fmt.Errorf("failed to read from database: %w", err)
	}

	return model.Code(code), nil
}

// ResolveURL возвращает оригинальный URL и увеличивает счётчик кликов
// одним запросом, без чтения перед записью
func (ds *DatabaseStore) ResolveURL(ctx context.Context, code model.Code) (model.URL, error) {
	query := `
		UPDATE urls
		SET clicks = clicks + 1
		WHERE short_code = $1
		RETURNING original_url
	`

	var originalURL string
	err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&originalURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("key %s: %w", code, ErrNotFound)
		}
		return "", fmt.Errorf("failed to update database: %w", err)
	}

	return model.URL(originalURL), nil
}

// AddClick увеличивает счётчик кликов без чтения URL
func (ds *DatabaseStore) AddClick(ctx context.Context, code model.Code) error {
	query := `
		UPDATE urls
		SET clicks = clicks + 1
		WHERE short_code = $1
	`

	tag, err := ds.pool.Exec(ctx, query, string(code))
	if err != nil {
		return fmt.Errorf("failed to update database: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	return nil
}

// CodeExists проверяет, занят ли короткий код
func (ds *DatabaseStore) CodeExists(ctx context.Context, code model.Code) (bool, error) {
	query := `
		SELECT EXISTS
		(SELECT 1 FROM urls WHERE short_code = $1)
	`

	var exists bool
	if err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check key existence: %w", err)
	}

	return exists, nil
}

// Ping проверяет подключение к базе данных
func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}

// Close закрывает пул подключений
func (ds *DatabaseStore) Close() error {
	ds.pool.Close()
	return nil
}
