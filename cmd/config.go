package cmd

// Config carries the raw application settings as read from the
// environment. Parsing and validation happen in the composition root.
type Config struct {
	HTTPPort string

	CostPerKilogram        string
	CostPerCubicCentimeter string
	MinimalPrice           string
	MinimalDistanceKm      string
	PriceCurrency          string

	MinLatitude  string
	MaxLatitude  string
	MinLongitude string
	MaxLongitude string

	MaxPackageSideMm string
}
