// populate structs from request parameters.
package bind

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag naming the parameter of a field.
//
//	type Note struct {
//		Id    int64  `param:"id"`
//		Title string // matches "title", "Title", "TITLE", ...
//	}
const TagName = "param"

var (
	// bean can not be populated. (nil, not a pointer, ...)
	ErrInvalidBean = errors.New("bind: invalid bean")

	// a parameter can not be converted into its field.
	ErrConversion = errors.New("bind: conversion failed")
)

// time layouts accepted for time.Time fields, in the order of trial.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Populate sets parameters into fields of bean.
//
// Parameters are matched to fields by the tag `param`, or by the field name (case insensitive).
// Unknown parameters are ignored, and fields without parameters are kept as they are.
//
// Values are converted weakly:
//
//   - a scalar field takes the first value of its parameter; a slice field takes all values.
//
//   - strings are parsed into numbers and booleans. An empty string is zero or false.
//     "on" (checkbox) is true.
//
//   - time.Time accepts RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04" and "2006-01-02".
//
// # Args
//
// - bean: pointer to a struct (or a map).
//
// - params: request parameters.
//
// # Returns
//
// - error: ErrInvalidBean or ErrConversion (wrapped).
func Populate(bean any, params url.Values) error {
	if bean == nil {
		return fmt.Errorf("%w: nil", ErrInvalidBean)
	}
	if rv := reflect.ValueOf(bean); rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %T is not a non-nil pointer", ErrInvalidBean, bean)
	}

	input := make(map[string]any, len(params))
	for k, vs := range params {
		input[k] = vs
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          TagName,
		WeaklyTypedInput: true,
		Result:           bean,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			firstOfMany,
			checkbox,
			stringToTime,
		),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBean, err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return nil
}

// multiple values into a scalar field: take the first.
func firstOfMany(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Slice {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Slice, reflect.Array:
		return data, nil
	}
	vs, ok := data.([]string)
	if !ok || len(vs) == 0 {
		return data, nil
	}
	return vs[0], nil
}

func checkbox(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	switch strings.ToLower(reflect.ValueOf(data).String()) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return data, nil
}

func stringToTime(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	s := reflect.ValueOf(data).String()
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%q is not a time", s)
}
