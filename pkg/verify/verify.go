// pkg/verify/verify.go

package verify

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/CodeMonkeyCybersecurity/cyberkit/pkg/digest"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with cyberkit's custom tags:
//
//	digest_algorithm  string is a known digest algorithm name
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
		_ = validate.RegisterValidation("digest_algorithm", func(fl validator.FieldLevel) bool {
			_, err := digest.ParseAlgorithm(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// Struct validates v's `validate` tags. Every failing field is reported,
// aggregated into one multierror.
func Struct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !cerr.As(err, &fieldErrs) {
		return cerr.Wrap(err, "validate")
	}

	var result *multierror.Error
	for _, fe := range fieldErrs {
		result = multierror.Append(result, cerr.New(describe(fe)))
	}
	result.ErrorFormat = listFormat
	return result
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), rootName(fe))
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "digest_algorithm":
		return fmt.Sprintf("%s has unknown digest algorithm %q", field, fe.Value())
	}
	return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
}

// rootName is the struct name prefix of a namespace, including the dot.
func rootName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[:i+1]
	}
	return ""
}

// fieldName reports fields by their mapstructure key so messages match the
// config file and flags.
func fieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func listFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
