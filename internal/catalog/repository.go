package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository reads the settings store. All queries are read-only; the
// documents are owned and versioned by the back office.
type Repository interface {
	GetProductTypes(ctx context.Context) ([]ProductType, error)
	GetMaterials(ctx context.Context) ([]Material, error)
	GetOptions(ctx context.Context) ([]Option, error)
	GetLabels(ctx context.Context) (map[string]string, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProductTypes(ctx context.Context) ([]ProductType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT slug, name, icon,
		       min_width, min_height, min_depth, min_thickness,
		       max_width, max_height, max_depth, max_thickness,
		       options_categorie, area_axis_a, area_axis_b, sort_order
		FROM product_types
		ORDER BY sort_order, slug`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetProductTypes, err)
	}
	defer rows.Close()

	var types []ProductType
	for rows.Next() {
		var t ProductType
		var axisA, axisB string
		if err := rows.Scan(
			&t.Slug, &t.Name, &t.Icon,
			&t.DimensionsMin.Width, &t.DimensionsMin.Height,
			&t.DimensionsMin.Depth, &t.DimensionsMin.Thickness,
			&t.DimensionsMax.Width, &t.DimensionsMax.Height,
			&t.DimensionsMax.Depth, &t.DimensionsMax.Thickness,
			&t.OptionsCategorie, &axisA, &axisB, &t.SortOrder,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedGetProductTypes, err)
		}
		t.AreaAxes = [2]Axis{Axis(axisA), Axis(axisB)}
		types = append(types, t)
	}

	return types, rows.Err()
}

func (r *repository) GetMaterials(ctx context.Context) ([]Material, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, color_hex, prix_m2, sort_order
		FROM materials
		ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetMaterials, err)
	}
	defer rows.Close()

	var materials []Material
	for rows.Next() {
		var m Material
		if err := rows.Scan(&m.ID, &m.Name, &m.ColorHex, &m.PrixM2, &m.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedGetMaterials, err)
		}
		materials = append(materials, m)
	}

	return materials, rows.Err()
}

func (r *repository) GetOptions(ctx context.Context) ([]Option, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT slug, name, price, categorie, type, COALESCE(groupe, ''), actif, sort_order
		FROM options
		ORDER BY sort_order, slug`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetOptions, err)
	}
	defer rows.Close()

	var options []Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.Slug, &o.Name, &o.Price, &o.Categorie, &o.Type, &o.Groupe, &o.Actif, &o.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedGetOptions, err)
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

func (r *repository) GetLabels(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM labels`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetLabels, err)
	}
	defer rows.Close()

	labels := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedGetLabels, err)
		}
		labels[k] = v
	}

	return labels, rows.Err()
}
