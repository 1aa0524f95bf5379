package equipment

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

//go:embed seed/equipment.json
var seedJSON []byte

// Dataset is the full static catalog, in source insertion order.
type Dataset struct {
	Rubbers []Rubber `json:"rubbers"`
	Blades  []Blade  `json:"blades"`
}

// Seed decodes the dataset compiled into the binary.
func Seed() (Dataset, error) {
	return DecodeDataset(bytes.NewReader(seedJSON))
}

func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	defer func() { _ = f.Close() }()

	return DecodeDataset(f)
}

// DecodeDataset reads and validates a dataset. Unknown fields, unknown
// enum values and trailing data are rejected.
func DecodeDataset(r io.Reader) (Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var d Dataset
	if err := dec.Decode(&d); err != nil {
		return Dataset{}, fmt.Errorf("%w: decode dataset: %v", ErrInvalidRecord, err)
	}
	if dec.More() {
		return Dataset{}, fmt.Errorf("%w: decode dataset: trailing data after dataset", ErrInvalidRecord)
	}
	if err := d.Validate(); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

func EncodeDataset(w io.Writer, d Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func (d Dataset) Validate() error {
	seen := make(map[string]struct{}, len(d.Rubbers))
	for _, r := range d.Rubbers {
		if err := r.Validate(); err != nil {
			return err
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: %w: rubber %q", ErrInvalidRecord, ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(d.Blades))
	for _, b := range d.Blades {
		if err := b.Validate(); err != nil {
			return err
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: %w: blade %q", ErrInvalidRecord, ErrDuplicateID, b.ID)
		}
		seen[b.ID] = struct{}{}
	}

	return nil
}
