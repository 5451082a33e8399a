// Package contract holds shared configuration and interfaces between the
// CLI surface, the snapshot providers and the series engine.
package contract

import (
	"context"

	"github.com/nicknexus/impact/schema"
)

// SnapshotProvider is the persistence capability the engine depends on:
// something that can return the current metrics and data points for an
// initiative. The engine itself never fetches.
type SnapshotProvider interface {
	// Load returns the current snapshot. Implementations must return a
	// snapshot the caller may treat as immutable.
	Load(ctx context.Context) (schema.Snapshot, error)
}
