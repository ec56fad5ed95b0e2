package router

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/wyrmsheet/backend/pkg/errorx"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

// bindRequest fills req from the http request: a JSON body first (POST with a
// JSON content type), then path values (uri tag), query or form values (form
// tag), and cookie-session values (session tag, with an optional ",delete"
// flag that removes the value after reading).
func bindRequest(ctx context.Context, method string, req any) error {
	r := xcontext.HTTPRequest(ctx)

	if method == http.MethodPost {
		contentType := r.Header.Get("Content-Type")
		if strings.Contains(contentType, "application/json") {
			if err := json.NewDecoder(r.Body).Decode(req); err != nil {
				return errorx.New(errorx.BadRequest, "Cannot parse the request body")
			}
		} else {
			if err := r.ParseForm(); err != nil {
				return errorx.New(errorx.BadRequest, "Cannot parse the request form")
			}
		}
	}

	v := reflect.ValueOf(req).Elem()
	t := v.Type()

	var sessionDirty bool
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if name, ok := field.Tag.Lookup("uri"); ok {
			if value := r.PathValue(name); value != "" {
				if err := setField(v.Field(i), name, value); err != nil {
					return err
				}
			}
			continue
		}

		if name, ok := field.Tag.Lookup("form"); ok {
			value := r.URL.Query().Get(name)
			if method == http.MethodPost {
				if formValue := r.PostFormValue(name); formValue != "" {
					value = formValue
				}
			}
			if value != "" {
				if err := setField(v.Field(i), name, value); err != nil {
					return err
				}
			}
			continue
		}

		if tag, ok := field.Tag.Lookup("session"); ok {
			name, opt, _ := strings.Cut(tag, ",")
			session, err := xcontext.SessionStore(ctx).Get(r)
			if err != nil {
				continue
			}

			if value, ok := session.Values[name].(string); ok {
				if err := setField(v.Field(i), name, value); err != nil {
					return err
				}
			}

			if opt == "delete" {
				delete(session.Values, name)
				sessionDirty = true
			}
		}
	}

	if sessionDirty {
		session, err := xcontext.SessionStore(ctx).Get(r)
		if err == nil {
			if err := session.Save(r, xcontext.HTTPWriter(ctx)); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot save the session: %v", err)
			}
		}
	}

	return nil
}

func setField(field reflect.Value, name, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return errorx.New(errorx.BadRequest, "Invalid value of %s", name)
		}
		field.SetInt(parsed)

	case reflect.Bool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return errorx.New(errorx.BadRequest, "Invalid value of %s", name)
		}
		field.SetBool(parsed)

	case reflect.Float32, reflect.Float64:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errorx.New(errorx.BadRequest, "Invalid value of %s", name)
		}
		field.SetFloat(parsed)

	default:
		return errorx.New(errorx.BadRequest, "Unsupported value of %s", name)
	}

	return nil
}
