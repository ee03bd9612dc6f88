package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DefaultSessionID is used when no client address can be derived at all.
const DefaultSessionID = "local"

// SessionID derives the conversational session key from network-origin
// metadata: the first hop of X-Forwarded-For when present, else the direct
// client IP, else a fixed literal. The key is opaque to the retrieval
// core; note that multiple tabs behind one address share a session.
func SessionID(ctx *fiber.Ctx) string {
	if forwarded := ctx.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	if ip := ctx.IP(); ip != "" {
		return ip
	}

	return DefaultSessionID
}
