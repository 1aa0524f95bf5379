package equipment

import "fmt"

// Handle is the grip style of a blade.
type Handle string

const (
	HandleStraight        Handle = "straight"
	HandleFlared          Handle = "flared"
	HandleAnatomic        Handle = "anatomic"
	HandleChinesePenhold  Handle = "chinese_penhold"
	HandleJapanesePenhold Handle = "japanese_penhold"
)

// Handles is the closed set of accepted handles.
var Handles = []Handle{
	HandleStraight,
	HandleFlared,
	HandleAnatomic,
	HandleChinesePenhold,
	HandleJapanesePenhold,
}

func ParseHandle(s string) (Handle, error) {
	h := Handle(s)
	if !h.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownHandle, s)
	}
	return h, nil
}

func (h Handle) Valid() bool {
	switch h {
	case HandleStraight, HandleFlared, HandleAnatomic, HandleChinesePenhold, HandleJapanesePenhold:
		return true
	default:
		return false
	}
}

func (h Handle) Label() string {
	switch h {
	case HandleStraight:
		return "straight"
	case HandleFlared:
		return "flared"
	case HandleAnatomic:
		return "anatomic"
	case HandleChinesePenhold:
		return "chinese penhold"
	case HandleJapanesePenhold:
		return "japanese penhold"
	default:
		return "unknown"
	}
}

func (h Handle) String() string { return string(h) }

func (h *Handle) UnmarshalText(b []byte) error {
	v, err := ParseHandle(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
