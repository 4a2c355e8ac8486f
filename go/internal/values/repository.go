package values

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/dynasty-trades/go/internal/models"
)

const (
	assetsTable = "fantasy_trades_app_players"
	pointsTable = "fantasy_trades_app_ktcplayervalues"
)

// Repository reads assets and dated values from the value store. It never
// writes.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetAssetsBySleeperIDs returns the assets tracked for the given upstream
// player ids, keyed by that id. Ids the store does not know are absent.
func (r *Repository) GetAssetsBySleeperIDs(ctx context.Context, sleeperIDs []string) (map[string]models.ValueAsset, error) {
	ids := make([]int64, 0, len(sleeperIDs))
	for _, s := range sleeperIDs {
		// Team defenses use abbreviations like "DEN" and are not tracked.
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return map[string]models.ValueAsset{}, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT ktc_player_id, player_name, sleeper_player_id, COALESCE(position, '')
		 FROM `+assetsTable+`
		 WHERE sleeper_player_id = ANY($1) AND ktc_player_id IS NOT NULL
		 ORDER BY id ASC`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets := make(map[string]models.ValueAsset, len(ids))
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		if _, dup := assets[a.SleeperPlayerID]; !dup {
			assets[a.SleeperPlayerID] = *a
		}
	}
	return assets, rows.Err()
}

// FindAssetByName returns the first asset whose name contains name, case
// insensitively, or nil.
func (r *Repository) FindAssetByName(ctx context.Context, name string) (*models.ValueAsset, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT ktc_player_id, player_name, sleeper_player_id, COALESCE(position, '')
		 FROM `+assetsTable+`
		 WHERE player_name ILIKE '%' || $1 || '%' AND ktc_player_id IS NOT NULL
		 ORDER BY id ASC
		 LIMIT 1`,
		name,
	)
	a, err := scanAsset(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find asset %q: %w", name, err)
	}
	return a, nil
}

// GetValuePoints returns the asset's values dated on or after from, oldest
// first. A zero from returns the whole series.
func (r *Repository) GetValuePoints(ctx context.Context, assetID int64, from time.Time) ([]models.ValuePoint, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ktc_player_id, date, ktc_value
		 FROM `+pointsTable+`
		 WHERE ktc_player_id = $1 AND ($2::date IS NULL OR date >= $2::date)
		 ORDER BY date ASC`,
		assetID, nullableDate(from),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query values for asset %d: %w", assetID, err)
	}
	defer rows.Close()

	var points []models.ValuePoint
	for rows.Next() {
		var p models.ValuePoint
		if err := rows.Scan(&p.AssetID, &p.Date, &p.Value); err != nil {
			return nil, fmt.Errorf("failed to scan value: %w", err)
		}
		p.Date = p.Date.UTC()
		points = append(points, p)
	}
	return points, rows.Err()
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// --- scan helpers ---

type scannable interface {
	Scan(dest ...any) error
}

func scanAsset(row scannable) (*models.ValueAsset, error) {
	var a models.ValueAsset
	var sleeperID *int64
	if err := row.Scan(&a.ID, &a.Name, &sleeperID, &a.Position); err != nil {
		return nil, err
	}
	if sleeperID != nil {
		a.SleeperPlayerID = strconv.FormatInt(*sleeperID, 10)
	}
	return &a, nil
}
