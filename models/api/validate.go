package apimodels

import (
	"fmt"
	"strings"

	"hiring-hare-backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// ValidateStruct runs the validator tags of a payload and folds the result
// into the ErrValidation taxonomy with a readable field list.
func ValidateStruct(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(models.ErrValidation, err.Error())
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return errors.Wrapf(models.ErrValidation, "invalid fields: %s", strings.Join(fields, ", "))
}
