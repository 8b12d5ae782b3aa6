package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (1MB).
// Contact-style forms carry only text fields, so the limit is deliberately low.
const DefaultMaxMemory = 1 << 20

// Form binds submitted form fields into a tagged struct. It handles
// application/x-www-form-urlencoded and multipart/form-data content types.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Supported field types are string and []string; multi-value fields bind
// every submitted value, single-value fields bind the first.
//
// Example:
//
//	type SubmissionForm struct {
//		Name  string `form:"name"`
//		Email string `form:"email"`
//	}
//
//	var form SubmissionForm
//	if err := binder.Form()(r, &form); err != nil {
//		// reject the request
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		var values map[string][]string

		switch {
		case mediaType == "application/x-www-form-urlencoded" || mediaType == "":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case strings.HasPrefix(mediaType, "multipart/form-data"):
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			} else {
				values = make(map[string][]string)
			}

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return bindForm(v, values)
	}
}

// bindForm assigns submitted values to tagged struct fields.
func bindForm(v any, values map[string][]string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidForm)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidForm)
	}

	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		name := fieldType.Tag.Get("form")
		if name == "" || name == "-" {
			continue
		}
		if idx := strings.Index(name, ","); idx != -1 {
			name = name[:idx]
		}

		fieldValues, exists := values[name]
		if !exists || len(fieldValues) == 0 {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(fieldValues[0])
		case reflect.Slice:
			if field.Type().Elem().Kind() != reflect.String {
				return fmt.Errorf("%w: field %s: unsupported slice type", ErrInvalidForm, fieldType.Name)
			}
			field.Set(reflect.ValueOf(append([]string(nil), fieldValues...)))
		default:
			return fmt.Errorf("%w: field %s: unsupported type %s", ErrInvalidForm, fieldType.Name, field.Kind())
		}
	}

	return nil
}
