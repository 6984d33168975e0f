package models

import "fmt"

// PickupStop is one ordered stop in a suggested route
type PickupStop struct {
	ColonyID             int     `json:"colony_id"`
	ColonyName           string  `json:"colony_name,omitempty"`
	Latitude             float64 `json:"latitude,omitempty"`
	Longitude            float64 `json:"longitude,omitempty"`
	ReadyWasteType       string  `json:"ready_waste_type"`
	MaxWasteKg           float64 `json:"max_waste_kg"`
	DistanceFromPrevious float64 `json:"distance_from_previous"`
	OrderInRoute         int     `json:"order_in_route"` // 1-based
}

// RouteSuggestion is a server-computed ordered set of pickups for one trip.
// Immutable once received; selection is tracked separately.
type RouteSuggestion struct {
	RouteID            int          `json:"route_id"`
	Pickups            []PickupStop `json:"pickups"`
	TotalDistance      float64      `json:"total_distance"`
	EstimatedTimeHours float64      `json:"estimated_time_hours"`
	EfficiencyScore    float64      `json:"efficiency_score"` // kg per km
	TotalWeightKg      float64      `json:"total_estimated_weight,omitempty"`
}

// Validate checks the ordering invariant: order_in_route must be a
// contiguous 1..N sequence matching list position.
func (r *RouteSuggestion) Validate() error {
	if len(r.Pickups) == 0 {
		return fmt.Errorf("route %d has no pickups", r.RouteID)
	}
	for i, p := range r.Pickups {
		if p.OrderInRoute != i+1 {
			return fmt.Errorf("route %d: pickup at position %d has order_in_route %d",
				r.RouteID, i+1, p.OrderInRoute)
		}
	}
	return nil
}
