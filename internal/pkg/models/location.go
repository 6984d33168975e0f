package models

import "time"

// LocationMethod identifies which resolution strategy produced the
// effective location
type LocationMethod string

const (
	LocationMethodSaved   LocationMethod = "saved"
	LocationMethodCurrent LocationMethod = "current"
	LocationMethodCustom  LocationMethod = "custom"
	LocationMethodAll     LocationMethod = "all"
)

// Location represents a resolved geographic point with provenance
type Location struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Accuracy  float64        `json:"accuracy,omitempty"` // meters, current fixes only
	Name      string         `json:"name,omitempty"`
	Address   string         `json:"address,omitempty"`
	City      string         `json:"city,omitempty"`
	State     string         `json:"state,omitempty"`
	Method    LocationMethod `json:"method"`
}

// Position is a raw fix from the position provider
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SavedLocation is the backend's stored service-area location for a collector
type SavedLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
}

// Valid reports whether the saved location carries usable coordinates.
// The backend returns nulls when a collector never set a service area.
func (s *SavedLocation) Valid() bool {
	return s != nil && s.Latitude != nil && s.Longitude != nil
}

// LocationState is a snapshot of the resolver: which strategy is active,
// the effective location it produced, and whether an attempt is in flight.
// Version increments on every applied transition.
type LocationState struct {
	Method   LocationMethod `json:"method"`
	Location *Location      `json:"location"` // nil when Method is "all"
	Saved    *Location      `json:"saved_location,omitempty"`
	Loading  bool           `json:"loading"`
	Err      string         `json:"error,omitempty"`
	Version  uint64         `json:"version"`
}

// HasLocation reports whether an effective coordinate is available
func (s LocationState) HasLocation() bool { return s.Location != nil }

// IsUsingSavedLocation reports whether the saved strategy is active
func (s LocationState) IsUsingSavedLocation() bool { return s.Method == LocationMethodSaved }

// IsUsingCurrentLocation reports whether the current-position strategy is active
func (s LocationState) IsUsingCurrentLocation() bool { return s.Method == LocationMethodCurrent }

// IsShowingAll reports whether no geographic filter is active
func (s LocationState) IsShowingAll() bool { return s.Method == LocationMethodAll }

// IsUsingCustomLocation reports whether an explicit override is active
func (s LocationState) IsUsingCustomLocation() bool { return s.Method == LocationMethodCustom }
