// Package validatorx holds the request validator and the ledger's custom
// tags.
package validatorx

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/booking-capacity/constant"
)

var (
	validate *gpvalidator.Validate
	once     sync.Once
)

// Init builds the validator once. Failed fields are reported by their json
// name.
func Init() {
	once.Do(func() {
		validate = gpvalidator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("booking_type", func(fl gpvalidator.FieldLevel) bool {
			return constant.BookingType(fl.Field().String()).Valid()
		})
	})
}

func ValidateStruct(s any) error {
	Init()
	return validate.Struct(s)
}

// Fields lists the fields err reports as invalid, nil when err is not a
// validation error.
func Fields(err error) []string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+":"+fe.Tag())
	}
	return fields
}
