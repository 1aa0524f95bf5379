package equipment_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"TTGear/internal/equipment"
)

func validRubber() equipment.Rubber {
	return equipment.Rubber{
		ID:             "x1",
		Name:           "Test Rubber",
		Brand:          "Acme",
		Type:           equipment.RubberInverted,
		Hardness:       40,
		Speed:          5,
		Spin:           5,
		Control:        5,
		Tackiness:      5,
		Price:          10,
		Weight:         45,
		Thickness:      []float64{2.0},
		Pros:           []string{},
		Cons:           []string{},
		RecommendedFor: []string{},
	}
}

func validBlade() equipment.Blade {
	return equipment.Blade{
		ID:          "y1",
		Name:        "Test Blade",
		Brand:       "Acme",
		Plies:       5,
		Composition: []string{"ayous"},
		Weight:      85,
		Speed:       5,
		Control:     5,
		Stiffness:   5,
		Price:       50,
		Handle:      equipment.HandleStraight,
		Thickness:   5.8,
	}
}

func TestSeed(t *testing.T) {
	rq := require.New(t)

	d, err := equipment.Seed()
	rq.NoError(err)
	rq.Len(d.Rubbers, 6)
	rq.Len(d.Blades, 5)

	r1 := d.Rubbers[0]
	rq.Equal("r1", r1.ID)
	rq.Equal("Tenergy 05", r1.Name)
	rq.Equal(equipment.RubberInverted, r1.Type)
	rq.Equal(9.0, r1.Speed)
	rq.Equal(10.0, r1.Spin)

	b1 := d.Blades[0]
	rq.Equal("b1", b1.ID)
	rq.Equal(5, b1.Plies)
	rq.Equal(equipment.HandleFlared, b1.Handle)
}

func TestSeed_Invariants(t *testing.T) {
	rq := require.New(t)

	d, err := equipment.Seed()
	rq.NoError(err)

	inRange := func(v float64) bool { return v >= 1 && v <= 10 }

	for _, r := range d.Rubbers {
		rq.NotEmpty(r.ID)
		rq.True(inRange(r.Speed), r.ID)
		rq.True(inRange(r.Spin), r.ID)
		rq.True(inRange(r.Control), r.ID)
		rq.True(inRange(r.Tackiness), r.ID)
		rq.GreaterOrEqual(r.Price, 0.0)
		rq.GreaterOrEqual(r.Weight, 0.0)
		rq.Contains(equipment.RubberTypes, r.Type)
	}

	for _, b := range d.Blades {
		rq.NotEmpty(b.ID)
		rq.True(inRange(b.Speed), b.ID)
		rq.True(inRange(b.Control), b.ID)
		rq.True(inRange(b.Stiffness), b.ID)
		rq.GreaterOrEqual(b.Price, 0.0)
		rq.GreaterOrEqual(b.Weight, 0.0)
		rq.Positive(b.Plies)
		rq.Contains(equipment.Handles, b.Handle)
	}
}

func TestDecodeDataset_RoundTrip(t *testing.T) {
	rq := require.New(t)

	d, err := equipment.Seed()
	rq.NoError(err)

	var buf bytes.Buffer
	rq.NoError(equipment.EncodeDataset(&buf, d))

	got, err := equipment.DecodeDataset(&buf)
	rq.NoError(err)
	rq.Equal(d, got)

	// r3 has no image in the seed and must stay without one.
	rq.Empty(got.Rubbers[2].ImageURL)
	rq.NotContains(buf.String(), `"imageUrl": ""`)
	rq.Equal([]float64{1.7, 1.9, 2.1}, got.Rubbers[0].Thickness)
	rq.Equal([]string{"koto", "limba", "ayous", "limba", "koto"}, got.Blades[0].Composition)
}

func TestDecodeDataset_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "unknown rubber type",
			input:   `{"rubbers":[{"id":"x","name":"n","brand":"b","type":"sandpaper","speed":5,"spin":5,"control":5,"tackiness":5,"thickness":[2]}],"blades":[]}`,
			message: "unknown rubber type",
		},
		{
			name:    "unknown handle",
			input:   `{"rubbers":[],"blades":[{"id":"y","name":"n","brand":"b","plies":5,"composition":["ayous"],"speed":5,"control":5,"stiffness":5,"handle":"shakehand","thickness":5}]}`,
			message: "unknown handle",
		},
		{
			name:    "unknown field",
			input:   `{"rubbers":[],"blades":[],"paddles":[]}`,
			message: "paddles",
		},
		{
			name:    "rating out of range",
			input:   `{"rubbers":[{"id":"x","name":"n","brand":"b","type":"anti","speed":11,"spin":5,"control":5,"tackiness":5,"thickness":[2]}],"blades":[]}`,
			message: "Speed",
		},
		{
			name:    "trailing data",
			input:   `{"rubbers":[],"blades":[]} garbage`,
			message: "trailing data",
		},
		{
			name:    "duplicate id",
			input:   `{"rubbers":[],"blades":[{"id":"y","name":"n","brand":"b","plies":5,"composition":["ayous"],"speed":5,"control":5,"stiffness":5,"handle":"flared","thickness":5},{"id":"y","name":"n","brand":"b","plies":5,"composition":["ayous"],"speed":5,"control":5,"stiffness":5,"handle":"flared","thickness":5}]}`,
			message: "duplicate id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := equipment.DecodeDataset(strings.NewReader(tc.input))
			rq.ErrorIs(err, equipment.ErrInvalidRecord)
			rq.ErrorContains(err, tc.message)
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(r *equipment.Rubber, b *equipment.Blade)
		ok     bool
	}{
		{name: "valid", mutate: func(*equipment.Rubber, *equipment.Blade) {}, ok: true},
		{name: "empty rubber id", mutate: func(r *equipment.Rubber, _ *equipment.Blade) { r.ID = "" }},
		{name: "negative price", mutate: func(r *equipment.Rubber, _ *equipment.Blade) { r.Price = -1 }},
		{name: "zero spin", mutate: func(r *equipment.Rubber, _ *equipment.Blade) { r.Spin = 0 }},
		{name: "no thickness", mutate: func(r *equipment.Rubber, _ *equipment.Blade) { r.Thickness = nil }},
		{name: "bad image url", mutate: func(r *equipment.Rubber, _ *equipment.Blade) { r.ImageURL = "not a url" }},
		{name: "unset rubber type", mutate: func(r *equipment.Rubber, _ *equipment.Blade) { r.Type = "" }},
		{name: "zero plies", mutate: func(_ *equipment.Rubber, b *equipment.Blade) { b.Plies = 0 }},
		{name: "negative weight", mutate: func(_ *equipment.Rubber, b *equipment.Blade) { b.Weight = -5 }},
		{name: "stiffness too high", mutate: func(_ *equipment.Rubber, b *equipment.Blade) { b.Stiffness = 10.5 }},
		{name: "unknown handle", mutate: func(_ *equipment.Rubber, b *equipment.Blade) { b.Handle = "pistol" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			r, b := validRubber(), validBlade()
			tc.mutate(&r, &b)

			d := equipment.Dataset{Rubbers: []equipment.Rubber{r}, Blades: []equipment.Blade{b}}
			err := d.Validate()
			if tc.ok {
				rq.NoError(err)
				return
			}
			rq.ErrorIs(err, equipment.ErrInvalidRecord)
		})
	}
}

func TestDecodeDataset_TrailingNewline(t *testing.T) {
	d, err := equipment.DecodeDataset(strings.NewReader("{\"rubbers\":[],\"blades\":[]}\n\n"))
	require.NoError(t, err)
	require.Empty(t, d.Rubbers)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := equipment.LoadFile(t.TempDir() + "/missing.json")
	require.ErrorIs(t, err, equipment.ErrDataUnavailable)
}
