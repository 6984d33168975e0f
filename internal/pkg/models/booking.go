package models

// TimeSlot is an enumerated pickup window for a calendar date.
// Availability is advisory: the server is the enforcer.
type TimeSlot struct {
	Slot            string `json:"slot"`
	Label           string `json:"label"`
	Time            string `json:"time,omitempty"`
	Available       bool   `json:"available"`
	CurrentBookings int    `json:"current_bookings,omitempty"`
}

// RouteBatchRequest schedules the pickups of a selected route as one batch
type RouteBatchRequest struct {
	Pickups     []PickupStop `json:"pickups"`
	BookingDate string       `json:"booking_date"` // YYYY-MM-DD, must be >= today
	TimeSlot    string       `json:"time_slot"`
}

// RouteBatchResponse is the backend's confirmation of a scheduled batch
type RouteBatchResponse struct {
	Message    string `json:"message,omitempty"`
	BookingIDs []int  `json:"booking_ids"`
	BatchID    string `json:"batch_id,omitempty"`
}

// SchedulerState is a snapshot of the route selection workflow
type SchedulerState struct {
	Suggestions []RouteSuggestion `json:"route_suggestions"`
	Selected    *RouteSuggestion  `json:"selected_route"`
	Date        string            `json:"booking_date"`
	TimeSlot    string            `json:"time_slot"`
	Slots       []TimeSlot        `json:"time_slots"`
	Loading     bool              `json:"loading"`
	Scheduling  bool              `json:"scheduling"`
	Message     string            `json:"message,omitempty"`
	Err         string            `json:"error,omitempty"`
}
