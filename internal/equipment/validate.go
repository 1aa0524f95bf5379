package equipment

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = newValidator() //nolint:gochecknoglobals // skip

type enum interface {
	Valid() bool
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	lo.Must0(v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enum)
		return ok && e.Valid()
	}))
	return v
}

func (r Rubber) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: rubber %q: %v", ErrInvalidRecord, r.ID, err)
	}
	return nil
}

func (b Blade) Validate() error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("%w: blade %q: %v", ErrInvalidRecord, b.ID, err)
	}
	return nil
}
