package cache

import "fmt"

// PayloadKind tells how a cached body must be handed back to a caller.
type PayloadKind int

const (
	// PayloadStructured is a JSON document that is decoded into the
	// caller's target type.
	PayloadStructured PayloadKind = iota + 1

	// PayloadRaw is an opaque file body returned byte for byte.
	PayloadRaw
)

// String implements fmt.Stringer.
func (k PayloadKind) String() string {
	switch k {
	case PayloadStructured:
		return "structured"
	case PayloadRaw:
		return "raw"
	default:
		return fmt.Sprintf("PayloadKind(%d)", int(k))
	}
}

// Payload is the last successful response body stored for a RequestKey.
// Link keeps the pagination header of the response, since a 304 reply is
// not required to repeat it.
type Payload struct {
	Kind        PayloadKind `json:"kind"`
	ContentType string      `json:"content_type"`
	Link        []string    `json:"link,omitempty"`
	Body        []byte      `json:"body"`
}

// Valid reports whether the payload carries a known kind.
func (p Payload) Valid() bool {
	return p.Kind == PayloadStructured || p.Kind == PayloadRaw
}
