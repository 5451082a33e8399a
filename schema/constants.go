package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// RollingWindow represents a domain defined relative to "now".
	RollingWindow string

	// DatabaseBackend represents the database backend for snapshot storage.
	DatabaseBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All rolling windows supported. These are calendar units, not fixed day
// counts: "1month" subtracts one calendar month from the anchor date.
const (
	Window1Month  RollingWindow = "1month"
	Window6Months RollingWindow = "6months"
	Window1Year   RollingWindow = "1year" // default
	Window5Years  RollingWindow = "5years"
)

// All snapshot store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidRollingWindows lists all valid rolling windows.
var ValidRollingWindows = map[RollingWindow]struct{}{
	Window1Month:  {},
	Window6Months: {},
	Window1Year:   {},
	Window5Years:  {},
}

// ValidDatabaseBackends lists all valid snapshot store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
