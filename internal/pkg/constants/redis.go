package constants

// Redis key formats
const (
	KeyDriverGeo = "drivers:geo" // Geo set of online driver locations
)
