package readstore

import (
	"context"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/usecase/queries"
)

type FacilityReadStore struct {
	db db.DBTX
}

func NewFacilityReadStore(dbtx db.DBTX) *FacilityReadStore {
	return &FacilityReadStore{db: dbtx}
}

func (r *FacilityReadStore) FindAll(ctx context.Context) ([]*queries.FacilityView, error) {
	const query = `SELECT id, name, price FROM facilities ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find facilities", err)
	}
	defer rows.Close()

	var result []*queries.FacilityView
	for rows.Next() {
		view := queries.FacilityView{}
		if err := rows.Scan(&view.ID, &view.Name, &view.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan facility", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate facilities", err)
	}
	return result, nil
}
