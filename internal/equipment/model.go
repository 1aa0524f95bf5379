package equipment

import (
	"slices"

	"github.com/samber/lo"
)

// Rubber is a sheet covering. Ratings use a 1-10 scale, hardness the
// Japanese degree scale, weight grams and thickness millimetres.
type Rubber struct {
	ID             string     `json:"id" validate:"required"`
	Name           string     `json:"name" validate:"required"`
	Brand          string     `json:"brand" validate:"required"`
	Type           RubberType `json:"type" validate:"enum"`
	Hardness       float64    `json:"hardness" validate:"gte=0"`
	Speed          float64    `json:"speed" validate:"gte=1,lte=10"`
	Spin           float64    `json:"spin" validate:"gte=1,lte=10"`
	Control        float64    `json:"control" validate:"gte=1,lte=10"`
	Tackiness      float64    `json:"tackiness" validate:"gte=1,lte=10"`
	Price          float64    `json:"price" validate:"gte=0"`
	Weight         float64    `json:"weight" validate:"gte=0"`
	Thickness      []float64  `json:"thickness" validate:"min=1,dive,gt=0"`
	Description    string     `json:"description"`
	Pros           []string   `json:"pros"`
	Cons           []string   `json:"cons"`
	RecommendedFor []string   `json:"recommendedFor"`
	ImageURL       string     `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// Blade is the wooden or composite core of a paddle.
type Blade struct {
	ID             string   `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Brand          string   `json:"brand" validate:"required"`
	Plies          int      `json:"plies" validate:"gte=1"`
	Composition    []string `json:"composition" validate:"min=1,dive,required"`
	Weight         float64  `json:"weight" validate:"gte=0"`
	Speed          float64  `json:"speed" validate:"gte=1,lte=10"`
	Control        float64  `json:"control" validate:"gte=1,lte=10"`
	Stiffness      float64  `json:"stiffness" validate:"gte=1,lte=10"`
	Price          float64  `json:"price" validate:"gte=0"`
	Handle         Handle   `json:"handle" validate:"enum"`
	Thickness      float64  `json:"thickness" validate:"gt=0"`
	Description    string   `json:"description"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	RecommendedFor []string `json:"recommendedFor"`
	ImageURL       string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// Clone returns a copy that shares no slices with r.
func (r Rubber) Clone() Rubber {
	r.Thickness = slices.Clone(r.Thickness)
	r.Pros = slices.Clone(r.Pros)
	r.Cons = slices.Clone(r.Cons)
	r.RecommendedFor = slices.Clone(r.RecommendedFor)
	return r
}

func (b Blade) Clone() Blade {
	b.Composition = slices.Clone(b.Composition)
	b.Pros = slices.Clone(b.Pros)
	b.Cons = slices.Clone(b.Cons)
	b.RecommendedFor = slices.Clone(b.RecommendedFor)
	return b
}

func CloneRubbers(rs []Rubber) []Rubber {
	return lo.Map(rs, func(r Rubber, _ int) Rubber { return r.Clone() })
}

func CloneBlades(bs []Blade) []Blade {
	return lo.Map(bs, func(b Blade, _ int) Blade { return b.Clone() })
}
