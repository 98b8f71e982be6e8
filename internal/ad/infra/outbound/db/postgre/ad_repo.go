package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/davicafu/adsflow/internal/ad/domain"
	sharedUtils "github.com/davicafu/adsflow/internal/shared/infra/utils"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Driver de PostgreSQL
)

// uniqueViolation es el SQLSTATE de clave duplicada.
const uniqueViolation = "23505"

// AdRepoPostgres implementa RecordStore para PostgreSQL.
type AdRepoPostgres struct {
	db *sql.DB
}

var _ domain.RecordStore = (*AdRepoPostgres)(nil)

// NewAdRepoPostgres es el constructor del repositorio.
func NewAdRepoPostgres(db *sql.DB) *AdRepoPostgres {
	return &AdRepoPostgres{db: db}
}

// Put inserta el anuncio en la tabla de la colección.
func (r *AdRepoPostgres) Put(ctx context.Context, collection string, ad *domain.Ad) error {
	table, err := sharedUtils.QuoteIdentifier(collection)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO `+table+` (id, title, price, image_url, created_at) VALUES ($1, $2, $3, $4, $5)`,
		ad.ID, ad.Title, ad.Price, ad.ImageURL, ad.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrConflictingKey, ad.ID)
		}
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// ------------------ Inicialización ------------------

// InitPostgres crea una tabla por colección. createdAt se guarda tal cual se publica.
func InitPostgres(ctx context.Context, db *sql.DB, collections ...string) error {
	for _, collection := range collections {
		table, err := sharedUtils.QuoteIdentifier(collection)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS `+table+` (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		image_url TEXT,
		created_at TEXT NOT NULL
	)`)
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}
