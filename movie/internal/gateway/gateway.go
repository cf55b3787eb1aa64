package gateway

import (
	"bytes"
	"encoding/json"
)

// Shape identifies the layout a list payload arrived in.
type Shape string

const (
	// ShapeUnrecognised covers every body that is not one of the accepted
	// layouts, including bodies that are not JSON at all.
	ShapeUnrecognised = Shape("")
	// ShapeArray is a bare JSON array.
	ShapeArray = Shape("array")
	// ShapeContent is an object wrapping the array in "content".
	ShapeContent = Shape("content")
	// ShapeReviews is an object wrapping the array in "reviews".
	ShapeReviews = Shape("reviews")
)

// Payload is a list body classified into one of the accepted shapes.
type Payload[T any] struct {
	Shape Shape
	Items []T
	// Skipped counts array elements that did not decode into T.
	Skipped int
}

// DecodeList classifies body as a bare array or as an object wrapping the
// array in one of the given shapes, checked in order. Anything else is
// ShapeUnrecognised. Elements are decoded one by one; an element that does
// not decode into T is left out and counted in Skipped.
func DecodeList[T any](body []byte, wrappers ...Shape) Payload[T] {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Payload[T]{Shape: ShapeUnrecognised}
	}
	switch body[0] {
	case '[':
		if p, ok := decodeArray[T](body); ok {
			p.Shape = ShapeArray
			return p
		}
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return Payload[T]{Shape: ShapeUnrecognised}
		}
		for _, w := range wrappers {
			raw := bytes.TrimSpace(fields[string(w)])
			if len(raw) == 0 || raw[0] != '[' {
				continue
			}
			if p, ok := decodeArray[T](raw); ok {
				p.Shape = w
				return p
			}
		}
	}
	return Payload[T]{Shape: ShapeUnrecognised}
}

func decodeArray[T any](data []byte) (Payload[T], bool) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return Payload[T]{}, false
	}
	p := Payload[T]{Items: make([]T, 0, len(raws))}
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			p.Skipped++
			continue
		}
		p.Items = append(p.Items, v)
	}
	return p, true
}
