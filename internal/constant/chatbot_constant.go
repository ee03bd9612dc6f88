package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"

	// NoContextReply is the fixed refusal returned when retrieval finds
	// nothing relevant. It is emitted directly by the service; the LLM is
	// never asked to phrase an ungrounded answer.
	NoContextReply = "I don't have information about that."
)
