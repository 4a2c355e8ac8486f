package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamFetch is returned when the league platform could not be read.
	ErrUpstreamFetch = errors.New("upstream fetch failed")

	// ErrDataIntegrity marks a record that references data that does not exist.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrHistoryCycle is returned when a league history chain revisits a league.
	ErrHistoryCycle = errors.New("league history cycle")

	// ErrInvalidArgument is returned for malformed caller input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when the upstream has no such league or user.
	ErrNotFound = errors.New("not found")
)

// UpstreamError describes a failed call to the league platform.
type UpstreamError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s returned status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("upstream %s: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstreamFetch, e.Err}
}

// DataIntegrityError identifies the trade and asset that could not be resolved.
type DataIntegrityError struct {
	LeagueID      string
	TransactionID string
	AssetID       string
	Reason        string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: league=%s transaction=%s asset=%s: %s",
		e.LeagueID, e.TransactionID, e.AssetID, e.Reason)
}

func (e *DataIntegrityError) Unwrap() error {
	return ErrDataIntegrity
}
