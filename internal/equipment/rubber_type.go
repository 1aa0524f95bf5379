package equipment

import "fmt"

// RubberType is the surface type of a rubber sheet.
type RubberType string

const (
	RubberInverted  RubberType = "inverted"
	RubberShortPips RubberType = "short_pips"
	RubberLongPips  RubberType = "long_pips"
	RubberAnti      RubberType = "anti"
)

// RubberTypes is the closed set of accepted rubber types.
var RubberTypes = []RubberType{
	RubberInverted,
	RubberShortPips,
	RubberLongPips,
	RubberAnti,
}

func ParseRubberType(s string) (RubberType, error) {
	t := RubberType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRubberType, s)
	}
	return t, nil
}

func (t RubberType) Valid() bool {
	switch t {
	case RubberInverted, RubberShortPips, RubberLongPips, RubberAnti:
		return true
	default:
		return false
	}
}

// Label is the human readable form shown in listings.
func (t RubberType) Label() string {
	switch t {
	case RubberInverted:
		return "inverted"
	case RubberShortPips:
		return "short pips"
	case RubberLongPips:
		return "long pips"
	case RubberAnti:
		return "anti"
	default:
		return "unknown"
	}
}

func (t RubberType) String() string { return string(t) }

func (t *RubberType) UnmarshalText(b []byte) error {
	v, err := ParseRubberType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
