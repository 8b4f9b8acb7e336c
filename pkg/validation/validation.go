package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia única; validator cachea la metadata de structs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un request DTO según sus tags `validate` y devuelve un error
// legible (campo y regla) apto para responder como 400.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: falla la regla '%s'", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
