package queries

import (
	"context"

	"github.com/google/uuid"
)

type FacilityView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"nama"`
	Price int64     `json:"harga"`
}

type FacilityQueries interface {
	List(ctx context.Context) ([]*FacilityView, error)
}

type FacilityViewRepo interface {
	FindAll(ctx context.Context) ([]*FacilityView, error)
}

type facilityQueriesImpl struct {
	repo FacilityViewRepo
}

func NewFacilityQueries(repo FacilityViewRepo) FacilityQueries {
	return &facilityQueriesImpl{repo: repo}
}

func (q *facilityQueriesImpl) List(ctx context.Context) ([]*FacilityView, error) {
	return q.repo.FindAll(ctx)
}
