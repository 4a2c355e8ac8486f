package models

import "time"

// DateLayout is the calendar date format used on the wire and in the value store.
const DateLayout = "2006-01-02"

// ValueAsset is an asset tracked by the value store: a player or a synthetic
// draft-pick proxy such as "2025 Mid 1st".
type ValueAsset struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	SleeperPlayerID string `json:"sleeper_player_id,omitempty"`
	Position        string `json:"position,omitempty"`
}

// ValuePoint is one dated market value of an asset.
type ValuePoint struct {
	AssetID int64     `json:"-"`
	Date    time.Time `json:"-"`
	Value   int       `json:"value"`
}

// DateString formats the point's date as YYYY-MM-DD.
func (p ValuePoint) DateString() string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format(DateLayout)
}

// SeriesPoint is the wire shape of a ValuePoint.
type SeriesPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// Valuation is an asset's value when traded and its latest value.
type Valuation struct {
	ValueWhenTraded int           `json:"value_when_traded"`
	TradedAsOf      string        `json:"value_when_traded_as_of,omitempty"`
	LatestValue     int           `json:"latest_value"`
	LatestAsOf      string        `json:"value_now_as_of,omitempty"`
	Series          []SeriesPoint `json:"values,omitempty"`
}

// FixedValuation values an asset at a constant for both trade time and now.
func FixedValuation(v int) Valuation {
	return Valuation{ValueWhenTraded: v, LatestValue: v}
}
