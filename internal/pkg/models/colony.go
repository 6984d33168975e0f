package models

// ColonyCandidate is a colony whose accumulated waste crossed a collection
// threshold, as reported by the backend. Read-only on this side.
type ColonyCandidate struct {
	ColonyID       int     `json:"colony_id"`
	ColonyName     string  `json:"colony_name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	PlasticKg      float64 `json:"current_plastic_kg"`
	PaperKg        float64 `json:"current_paper_kg"`
	MetalKg        float64 `json:"current_metal_kg"`
	GlassKg        float64 `json:"current_glass_kg"`
	TextileKg      float64 `json:"current_textile_kg"`
	ReadyWasteType string  `json:"ready_waste_type"`
	MaxWasteKg     float64 `json:"max_waste_kg"`
	// distance is computed server-side only for geo-filtered queries
	DistanceKm float64 `json:"distance,omitempty"`
}

// CollectionPoint is a drop-off facility entity from the backend
type CollectionPoint struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Address    string   `json:"address,omitempty"`
	WasteTypes []string `json:"waste_types,omitempty"`
	ColonyID   int      `json:"colony_id,omitempty"`
}

// GeoQuery describes the geographic filter applied to a colony fetch.
// A nil Location means no filter: the server returns the unfiltered set.
type GeoQuery struct {
	Location *Location
	RadiusKm float64
}

// Filtered reports whether coordinate parameters should be sent
func (q GeoQuery) Filtered() bool { return q.Location != nil }

// ColonyList is the fetcher's snapshot: the held list plus fetch state
type ColonyList struct {
	Colonies []ColonyCandidate `json:"colonies"`
	Loading  bool              `json:"loading"`
	Err      string            `json:"error,omitempty"`
}
