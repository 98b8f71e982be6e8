package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// _ "github.com/mattn/go-sqlite3" // better performance but requires gcc
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/davicafu/adsflow/internal/ad/domain"
	sharedUtils "github.com/davicafu/adsflow/internal/shared/infra/utils"
)

type AdRepoSQLite struct {
	db *sql.DB
}

var _ domain.RecordStore = (*AdRepoSQLite)(nil)

func NewAdRepoSQLite(db *sql.DB) *AdRepoSQLite {
	return &AdRepoSQLite{db: db}
}

// Put inserta el anuncio; un id repetido viola la clave primaria.
func (r *AdRepoSQLite) Put(ctx context.Context, collection string, ad *domain.Ad) error {
	table, err := sharedUtils.QuoteIdentifier(collection)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO `+table+` (id, title, price, image_url, created_at) VALUES (?, ?, ?, ?, ?)`,
		ad.ID, ad.Title, ad.Price, ad.ImageURL, ad.CreatedAt,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrConflictingKey, ad.ID)
		}
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func isConstraintViolation(err error) bool {
	var sqliteErr *moderncsqlite.Error
	if errors.As(err, &sqliteErr) {
		// Los códigos extendidos comparten el byte bajo con el primario
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

// ------------------ Inicialización de DB ------------------

// InitSQLite crea una tabla por colección si no existe
func InitSQLite(ctx context.Context, db *sql.DB, collections ...string) error {
	for _, collection := range collections {
		table, err := sharedUtils.QuoteIdentifier(collection)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS `+table+` (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            price REAL NOT NULL,
            image_url TEXT,
            created_at TEXT NOT NULL
        )
    `)
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}
