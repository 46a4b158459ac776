package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/Hafizirfan96/spu-backend/internal/models"
)

type CatalogRepository interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListDistricts(ctx context.Context) ([]models.District, error)
	GetPost(ctx context.Context, id int) (*models.Post, error)
	GetDistrict(ctx context.Context, id int) (*models.District, error)
}

type catalogRepo struct {
	db DB
}

func NewCatalogRepository(db DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description FROM posts ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *catalogRepo) ListDistricts(ctx context.Context) ([]models.District, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM districts ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.District
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *catalogRepo) GetPost(ctx context.Context, id int) (*models.Post, error) {
	var p models.Post
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description FROM posts WHERE id=$1`, id).
		Scan(&p.ID, &p.Name, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepo) GetDistrict(ctx context.Context, id int) (*models.District, error) {
	var d models.District
	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM districts WHERE id=$1`, id).
		Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
