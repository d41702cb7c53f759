package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/model"
	"github.com/muhammadheryan/booking-capacity/repository/sqlbuilder"
)

const (
	table         = "bookable_product"
	statusPublish = "publish"
)

var columns = []string{"id", "parent_id", "booking_type", "time_enabled", "overlap_protection", "status"}

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.BookableProduct, error)
	ListTimeEnabled(ctx context.Context) ([]model.BookableProduct, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.BookableProduct, error) {
	query, args, err := sqlbuilder.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProduct: %v", sqlbuilder.ErrBuildQuery, err)
	}
	var p model.BookableProduct
	if err := s.conn.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: GetProduct: %v", sqlbuilder.ErrExecQuery, err)
	}
	return &p, nil
}

// ListTimeEnabled returns every published product that books time slots.
func (s *SQL) ListTimeEnabled(ctx context.Context) ([]model.BookableProduct, error) {
	query, args, err := sqlbuilder.Select(columns...).From(table).
		Where(squirrel.Eq{"time_enabled": true, "status": statusPublish}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTimeEnabled: %v", sqlbuilder.ErrBuildQuery, err)
	}
	items := make([]model.BookableProduct, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ListTimeEnabled: %v", sqlbuilder.ErrExecQuery, err)
	}
	return items, nil
}
