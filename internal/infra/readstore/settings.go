package readstore

import (
	"context"
	"strconv"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/errs"
	"stayops/internal/pkg/pgconv"
)

// SettingsReadStore reads operational settings from the database on every
// call. No caching: staff can change rates at runtime and the next operation
// must see the new value.
type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(dbtx db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: dbtx}
}

func (r *SettingsReadStore) get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM settings WHERE key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", errs.Mark(errs.Newf("setting %q is not configured", key), errs.ErrConfiguration)
		}
		return "", infra.WrapRepoErr("failed to read setting", err)
	}
	return value, nil
}

func (r *SettingsReadStore) Float(ctx context.Context, key string) (float64, error) {
	raw, err := r.get(ctx, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.Mark(errs.Newf("setting %q is not a number: %q", key, raw), errs.ErrConfiguration)
	}
	return v, nil
}

func (r *SettingsReadStore) Int(ctx context.Context, key string) (int, error) {
	v, err := r.Int64(ctx, key)
	return int(v), err
}

func (r *SettingsReadStore) Int64(ctx context.Context, key string) (int64, error) {
	raw, err := r.get(ctx, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.Mark(errs.Newf("setting %q is not an integer: %q", key, raw), errs.ErrConfiguration)
	}
	return v, nil
}
