package domain

// SnapshotSchemaVersion is the current persisted-save schema version.
// Hydration tolerates older snapshots by backfilling absent fields; bump
// this when the shape of PlayerState changes.
const SnapshotSchemaVersion = 1

// Snapshot is the plain-data serialization of PlayerState handed to the
// persistence collaborator. It carries no behavior; the store writes it out
// verbatim and later feeds it back through the engine's hydration.
type Snapshot struct {
	SchemaVersion int         `json:"schema_version"`
	SavedAtMS     int64       `json:"saved_at_ms"`
	Player        PlayerState `json:"player"`
}
