package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/dtroode/lifeos-server/internal/model"
)

const invalidBodyMessage = "Invalid request body"

// validationMessages maps "field.tag" or "field" to a user-facing message.
type validationMessages map[string]string

var registerTagNameOnce sync.Once

// useJSONFieldNames makes validator report fields by their json name.
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bind decodes the request into obj and converts the first failure into a
// model.ValidationError carrying a message from messages.
func bind(c *gin.Context, obj any, messages validationMessages) error {
	useJSONFieldNames()

	err := c.ShouldBind(obj)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return model.NewValidationError("", "Request is too large")
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return model.NewValidationError("", invalidBodyMessage)
	}

	fe := fieldErrs[0]
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return model.NewValidationError(fe.Field(), msg)
	}
	if msg, ok := messages[fe.Field()]; ok {
		return model.NewValidationError(fe.Field(), msg)
	}
	return model.NewValidationError(fe.Field(), invalidBodyMessage)
}
