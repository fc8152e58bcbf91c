package creature

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Neworly/one-year-one-code/internal/domain"
	"github.com/Neworly/one-year-one-code/internal/movepool"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagAttackType, validateAttackType)
	return v
}

func validateAttackType(fl validator.FieldLevel) bool {
	return movepool.IsValidAttackType(fl.Field().String())
}

// Validate checks a creature's stats and every occupied move slot
func Validate(c *domain.Creature) error {
	if err := validate.Struct(c); err != nil {
		return formatError(err)
	}
	for _, m := range c.Moves {
		if m == nil {
			continue
		}
		if err := validate.Struct(m); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				for _, e := range validationErrors {
					if e.Tag() == TagAttackType {
						return fmt.Errorf(ErrFmtAttackType, domain.ErrInvalidAttackType, m.AttackType, m.Name)
					}
				}
			}
			return formatError(err)
		}
	}
	return nil
}

func formatError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf(ErrFmtInvalid, domain.ErrInvalidCreature, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", e.Field()))
		case "min", "gt":
			problems = append(problems, fmt.Sprintf("%s must be %s %s", e.Field(), e.Tag(), e.Param()))
		case "ltefield":
			problems = append(problems, fmt.Sprintf("%s must not exceed %s", e.Field(), e.Param()))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return fmt.Errorf(ErrFmtInvalid, domain.ErrInvalidCreature, strings.Join(problems, ", "))
}
