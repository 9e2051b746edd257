// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

var numberType = reflect.TypeOf(json.Number(""))

// a JSON number is only accepted by integer targets, it is never
// taken as text
var numberHook mapstructure.DecodeHookFuncType = func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if numberType != from || numberType == to {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	case reflect.Interface:
	default:
		return nil, fmt.Errorf("number: %s is not a %s", data, to)
	}
	return data, nil
}

// any other string-kinded source (string, json.Number, named strings) is
// offered to a target that can unmarshal text
var textHook mapstructure.DecodeHookFuncType = func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if reflect.String != from.Kind() || from == to {
		return data, nil
	}
	result := reflect.New(to)
	unmarshaller, ok := result.Interface().(encoding.TextUnmarshaler)
	if !ok {
		return data, nil
	}
	err := unmarshaller.UnmarshalText([]byte(reflect.ValueOf(data).String()))
	if nil != err {
		return nil, err
	}
	return result.Elem().Interface(), nil
}

// floating point sources are only accepted by integer targets when
// they hold an exact integer
var integralHook mapstructure.DecodeHookFuncType = func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if reflect.Float32 != from.Kind() && reflect.Float64 != from.Kind() {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("non-integral value: %v", f)
	}
	return int64(f), nil
}

// integer sources must fit the integer target, e.g. a byte list
// element above 255 is an error rather than wrapping
var rangeHook mapstructure.DecodeHookFuncType = func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	target := reflect.New(to).Elem()
	unsigned := false
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		unsigned = true
	default:
		return data, nil
	}

	v := reflect.ValueOf(data)
	overflow := false
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if unsigned {
			overflow = n >= 0 && target.OverflowUint(uint64(n))
		} else {
			overflow = target.OverflowInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := v.Uint()
		if unsigned {
			overflow = target.OverflowUint(n)
		} else {
			overflow = n > math.MaxInt64 || target.OverflowInt(int64(n))
		}
	case reflect.String:
		if numberType != from {
			return data, nil
		}
		n, err := data.(json.Number).Int64()
		if nil != err {
			return data, nil
		}
		if unsigned {
			overflow = n >= 0 && target.OverflowUint(uint64(n))
		} else {
			overflow = target.OverflowInt(n)
		}
	}
	if overflow {
		return nil, fmt.Errorf("value: %v out of range for: %s", data, to)
	}
	return data, nil
}

// DecodeField - convert a generic value (as produced by JSON decoding
// or a hand built map) into target, which must be a pointer
//
// text forms are accepted for any target implementing
// encoding.TextUnmarshaler and json.Number is accepted only for
// integers (including integer types with a text form)
func DecodeField(input interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(numberHook, integralHook, rangeHook, textHook),
		ErrorUnused:      false,
		WeaklyTypedInput: false,
		Result:           target,
	})
	if nil != err {
		return err
	}
	return decoder.Decode(input)
}
