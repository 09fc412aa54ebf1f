package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	pkgErrors "notification-hub/pkg/errors"
)

// bind decodes the JSON body into req and converts binding failures into a
// validation error collector.
func (h *Handler) bind(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body", http.StatusBadRequest)
	}

	collector := pkgErrors.NewValidationErrorCollector()
	for _, fe := range verrs {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, jsonName(fe), describe(fe)))
	}
	return collector
}

func jsonName(fe validator.FieldError) string {
	return toSnake(fe.Field())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "datetime":
		return "must be a date in " + fe.Param() + " format"
	default:
		return "is invalid"
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
