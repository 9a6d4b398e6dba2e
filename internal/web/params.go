package web

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"bookcatalog/internal/httpx"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("query"); name != "" {
			return name
		}
		return strings.ToLower(f.Name)
	})
	return v
}

type homeParams struct {
	Slide int `query:"slide" validate:"gte=0,lte=1000"`
}

type listParams struct {
	Genre  string `query:"genre" validate:"max=100"`
	Search string `query:"search" validate:"max=200"`
	Author string `query:"author" validate:"max=100"`
	Page   int    `query:"page" validate:"gte=1,lte=100"`
}

type detailParams struct {
	ID string `query:"id" validate:"required,max=256"`
}

type apiParams struct {
	Query  string `query:"q" validate:"max=200"`
	Genre  string `query:"genre" validate:"max=100"`
	Author string `query:"author" validate:"max=100"`
	Cursor string `query:"cursor" validate:"max=1024"`
}

// intParam reads an optional integer query parameter.
func intParam(v url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number", key)
	}
	return n, nil
}

func stringParam(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}

// validateParams returns one detail per failed rule, nil when s is valid.
func validateParams(s any) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []httpx.ErrorDetail{{Message: err.Error()}}
	}

	details := make([]httpx.ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", fe.Field())
		case "max":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
			}
		case "gte", "lte":
			msg = fmt.Sprintf("%s is out of range", fe.Field())
		default:
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		details = append(details, httpx.ErrorDetail{Field: fe.Field(), Message: msg})
	}
	return details
}

func hasRequiredFailure(details []httpx.ErrorDetail, field string) bool {
	for _, d := range details {
		if d.Field == field && strings.HasSuffix(d.Message, "is required") {
			return true
		}
	}
	return false
}
