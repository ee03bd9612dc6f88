package store

// TopicStore is the capability the retrieval layer needs for per-session
// topic memory: plain key-value semantics, last write wins, case-sensitive
// keys. Implementations must tolerate concurrent callers on distinct
// session IDs without cross-contamination; concurrent writes to the same
// key may interleave arbitrarily but must never corrupt the stored value.
//
// Values are always topics that came out of a successful retrieval as
// DetectedTopic, never arbitrary strings.
type TopicStore interface {
	// GetTopic returns the last detected topic for a session, if any.
	GetTopic(sessionID string) (string, bool)
	// SetTopic remembers the topic for the session's next turn.
	SetTopic(sessionID, topic string)
}
