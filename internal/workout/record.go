package workout

// Record is implemented by every record kind that can be synchronized
// between the local store and the remote mirror. LastUpdated is the
// last-write-wins merge key and must be bumped on every mutation.
type Record interface {
	RecordID() string
	LastUpdated() int64
}

// Names of the synchronized collections, shared by the local store,
// the remote mirror and the sync engine.
const (
	CollectionSessions       = "sessions"
	CollectionPreferences    = "preferences"
	CollectionDefaults       = "exercise_defaults"
	CollectionTemplates      = "templates"
	CollectionCustomizations = "customizations"
)
