package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ClockSkew is how far a booking start may trail the gateway clock and still
// count as "now".
const ClockSkew = time.Minute

// Validator adapts go-playground/validator to echo.Validator. Failures are
// returned as 400 HTTP errors naming the first offending JSON field.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

func New() *Validator {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Validator {
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), now: now}

	val.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// RegisterValidation only fails on an empty tag or a reserved name.
	_ = val.v.RegisterValidation("notblank", notBlank)
	_ = val.v.RegisterValidation("future", val.future)
	_ = val.v.RegisterValidation("futureorpresent", val.futureOrPresent)
	return val
}

func (val *Validator) Validate(i any) error {
	err := val.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusBadRequest, message(verrs[0]))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "email":
		return field + " must be a valid email"
	case "future":
		return field + " must be in the future"
	case "futureorpresent":
		return field + " must not be in the past"
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", field, strings.ToLower(fe.Param()[:1])+fe.Param()[1:])
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(f.String()) != ""
}

func (val *Validator) future(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	return ok && t.After(val.now())
}

func (val *Validator) futureOrPresent(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	return ok && !t.Before(val.now().Add(-ClockSkew))
}
