package constants

// Redis key formats
const (
	// Session: the single persisted bearer token for this device's actor
	KeySessionToken = "smartwaste:token"
)

// Backend API paths
const (
	PathCollectorLogin    = "/collector/login"
	PathCitizenLogin      = "/auth/login"
	PathCollectorLocation = "/collector/location"
	PathReadyColonies     = "/collector/ready-colonies"
	PathNearbyColonies    = "/colony/nearby"
	PathCollectionPoints  = "/collection-points/"
	PathRouteSuggestions  = "/booking/route-suggestions"
	PathTimeSlots         = "/booking/time-slots"
	PathScheduleRoute     = "/booking/schedule-route"
)
