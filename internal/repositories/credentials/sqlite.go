package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"gymcli/internal/cryptox"
	"gymcli/internal/dbx"
	"gymcli/internal/models"
)

// Fixed storage keys for the persisted pair.
const (
	userKey  = "user"
	tokenKey = "auth_token"
)

// SQLiteStore keeps credentials in a local credentials(key,value) table,
// sealing every value with the device box before it is written.
type SQLiteStore struct {
	db  *sql.DB
	box *cryptox.Box
}

func NewSQLiteStore(db *sql.DB, box *cryptox.Box) *SQLiteStore {
	return &SQLiteStore{db: db, box: box}
}

func (r *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var sealed []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	value, err := r.box.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	sealed, err := r.box.Seal(value)
	if err != nil {
		return fmt.Errorf("failed to seal credentials[%s]: %w", key, err)
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, sealed)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteStore) delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete credentials[%s]: %w", key, err)
	}
	return nil
}

func encodeUser(user models.User) ([]byte, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}
	return data, nil
}

// SavePair writes both entries in one transaction, so a crash or a full disk
// can never leave a user without its token or the other way around.
func (r *SQLiteStore) SavePair(ctx context.Context, user models.User, token string) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, userKey, data); err != nil {
			return err
		}
		return r.set(ctx, tx, tokenKey, []byte(token))
	})
}

func (r *SQLiteStore) SaveUser(ctx context.Context, user models.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	return r.set(ctx, r.db, userKey, data)
}

// User returns the stored user record, or the zero User when none is stored.
func (r *SQLiteStore) User(ctx context.Context) (models.User, error) {
	data, err := r.get(ctx, r.db, userKey)
	if err != nil {
		return models.User{}, err
	}
	if data == nil {
		return models.User{}, nil
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to decode user: %w", err)
	}
	return user, nil
}

func (r *SQLiteStore) RemoveUser(ctx context.Context) error {
	return r.delete(ctx, userKey)
}

func (r *SQLiteStore) SaveToken(ctx context.Context, token string) error {
	return r.set(ctx, r.db, tokenKey, []byte(token))
}

// Token returns the stored bearer token, or "" when none is stored.
func (r *SQLiteStore) Token(ctx context.Context) (string, error) {
	data, err := r.get(ctx, r.db, tokenKey)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *SQLiteStore) RemoveToken(ctx context.Context) error {
	return r.delete(ctx, tokenKey)
}
