package values

import (
	"context"
	"fmt"
	"time"

	"github.com/mcdev12/dynasty-trades/go/internal/models"
	"github.com/rs/zerolog/log"
)

// UnknownPlayerName names players the value store does not track.
const UnknownPlayerName = "Unknown Player"

// ValuesRepository defines what the app layer needs from the value store
type ValuesRepository interface {
	GetAssetsBySleeperIDs(ctx context.Context, sleeperIDs []string) (map[string]models.ValueAsset, error)
	FindAssetByName(ctx context.Context, name string) (*models.ValueAsset, error)
	GetValuePoints(ctx context.Context, assetID int64, from time.Time) ([]models.ValuePoint, error)
}

// App resolves the market value of assets at trade time and now
type App struct {
	repo ValuesRepository
}

// NewApp creates a new values App
func NewApp(repo ValuesRepository) *App {
	return &App{
		repo: repo,
	}
}

// ValueWhenTraded returns the earliest sampled value dated on or after the
// trade, or 0 with an empty date when none exists.
func (a *App) ValueWhenTraded(ctx context.Context, asset models.ValueAsset, tradeDate time.Time) (int, string, error) {
	points, err := a.repo.GetValuePoints(ctx, asset.ID, tradeDate)
	if err != nil {
		return 0, "", err
	}
	p, ok := earliest(Sample(points, tradeDate))
	if !ok {
		return 0, "", nil
	}
	return p.Value, p.DateString(), nil
}

// LatestValue returns the last point of the asset's sampled series.
func (a *App) LatestValue(ctx context.Context, asset models.ValueAsset) (int, string, error) {
	points, err := a.repo.GetValuePoints(ctx, asset.ID, time.Time{})
	if err != nil {
		return 0, "", err
	}
	p, ok := latest(Sample(points, time.Time{}))
	if !ok {
		return 0, "", nil
	}
	return p.Value, p.DateString(), nil
}

// Appraise values an asset at trade time and now from a single read of its
// series. Missing data values the asset at 0.
func (a *App) Appraise(ctx context.Context, asset models.ValueAsset, tradeDate time.Time) (models.Valuation, error) {
	points, err := a.repo.GetValuePoints(ctx, asset.ID, time.Time{})
	if err != nil {
		return models.Valuation{}, fmt.Errorf("failed to get values for asset %d: %w", asset.ID, err)
	}

	var v models.Valuation

	sinceTrade := Sample(points, tradeDate)
	if p, ok := earliest(sinceTrade); ok {
		v.ValueWhenTraded = p.Value
		v.TradedAsOf = p.DateString()
		v.Series = Series(sinceTrade)
	}

	if p, ok := latest(Sample(points, time.Time{})); ok {
		v.LatestValue = p.Value
		v.LatestAsOf = p.DateString()
	}

	if len(points) == 0 {
		log.Debug().
			Int64("asset_id", asset.ID).
			Str("asset_name", asset.Name).
			Msg("no value data for asset")
	}

	return v, nil
}

// earliest and latest pick the ends of an ascending sampled series.
func earliest(sampled []models.ValuePoint) (models.ValuePoint, bool) {
	if len(sampled) == 0 {
		return models.ValuePoint{}, false
	}
	return sampled[0], true
}

func latest(sampled []models.ValuePoint) (models.ValuePoint, bool) {
	if len(sampled) == 0 {
		return models.ValuePoint{}, false
	}
	return sampled[len(sampled)-1], true
}

// AppraisePlayer values an upstream player. Players the store does not
// track come back as UnknownPlayerName with zero values.
func (a *App) AppraisePlayer(ctx context.Context, sleeperPlayerID string, tradeDate time.Time) (string, models.Valuation, error) {
	assets, err := a.repo.GetAssetsBySleeperIDs(ctx, []string{sleeperPlayerID})
	if err != nil {
		return "", models.Valuation{}, fmt.Errorf("failed to look up player %s: %w", sleeperPlayerID, err)
	}

	asset, ok := assets[sleeperPlayerID]
	if !ok {
		return UnknownPlayerName, models.Valuation{}, nil
	}

	v, err := a.Appraise(ctx, asset, tradeDate)
	if err != nil {
		return "", models.Valuation{}, err
	}
	return asset.Name, v, nil
}

// FindAsset looks up an asset by (partial) name; used for draft pick proxies.
func (a *App) FindAsset(ctx context.Context, name string) (*models.ValueAsset, error) {
	asset, err := a.repo.FindAssetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return asset, nil
}
