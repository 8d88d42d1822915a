package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(fieldName)

		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return types.Role(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("leavetype", func(fl validator.FieldLevel) bool {
			return slices.Contains(types.LeaveTypes, fl.Field().String())
		})
	})
}

// fieldName reports request fields by their wire name.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return "-"
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors

	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}

	fe := verrs[0]

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address"
	case "role":
		return "Role must be admin or employee"
	case "leavetype":
		return fmt.Sprintf("leave_type must be one of %s", strings.Join(types.LeaveTypes, ", "))
	case "datetime":
		return fmt.Sprintf("Invalid %s, expected YYYY-MM-DD", fe.Field())
	default:
		return fmt.Sprintf("Invalid value for %s", fe.Field())
	}
}
