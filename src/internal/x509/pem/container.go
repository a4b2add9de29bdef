// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pem

import "encoding/pem"

// Object is one decoded armor block. DER is owned by the Object.
type Object struct {
	Signature Signature
	Label     string
	// Headers holds RFC 1421 "Key: value" lines found before the body, or nil.
	Headers map[string]string
	DER     []byte
}

// Container is the ordered result of one decode call. It is never mutated
// after decoding, except by Release.
type Container struct {
	objects []*Object
}

// Len returns the number of objects.
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.objects)
}

// Object returns the i-th object, or nil when i is out of range.
func (c *Container) Object(i int) *Object {
	if c == nil || i < 0 || i >= len(c.objects) {
		return nil
	}
	return c.objects[i]
}

// Objects returns the objects in source order. The slice is a copy; the
// objects are shared.
func (c *Container) Objects() []*Object {
	if c == nil {
		return nil
	}
	return append([]*Object(nil), c.objects...)
}

// Filter returns the objects whose kind is in want, in source order.
func (c *Container) Filter(want Signature) []*Object {
	if c == nil {
		return nil
	}

	var out []*Object
	for _, obj := range c.objects {
		if obj.Signature&want != 0 {
			out = append(out, obj)
		}
	}
	return out
}

// Encode re-armors every object using its original label.
func (c *Container) Encode() []byte {
	if c == nil {
		return nil
	}

	var data []byte
	for _, obj := range c.objects {
		data = append(data, Encode(obj.Label, obj.DER)...)
	}
	return data
}

// Release drops every decoded buffer held by the container. Certificates
// already built from its objects keep their own reference to the bytes
// and stay valid. Release is idempotent.
func (c *Container) Release() {
	if c == nil {
		return
	}
	for _, obj := range c.objects {
		obj.DER = nil
		obj.Headers = nil
	}
	c.objects = nil
}

// Encode armors der under label with 64-column base64 lines.
func Encode(label string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  label,
		Bytes: der,
	})
}
