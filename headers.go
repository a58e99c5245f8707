// MIT License

// Copyright (c) 2023 wetrycode

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package vermin

import "strings"

// Header a single response header pair
type Header struct {
	Key   string
	Value string
}

// Headers ordered response headers, duplicated keys are allowed
type Headers []Header

// Add append a header pair
func (h *Headers) Add(key string, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Get returns the value of the first header matching key case-insensitively
func (h Headers) Get(key string) (string, bool) {
	for _, header := range h {
		if strings.EqualFold(header.Key, key) {
			return header.Value, true
		}
	}
	return "", false
}

// Values returns every value of key in insertion order
func (h Headers) Values(key string) []string {
	values := make([]string, 0)
	for _, header := range h {
		if strings.EqualFold(header.Key, key) {
			values = append(values, header.Value)
		}
	}
	return values
}

// Has whether any header matches one of keys case-insensitively
func (h Headers) Has(keys ...string) bool {
	for _, key := range keys {
		if _, ok := h.Get(key); ok {
			return true
		}
	}
	return false
}

// Clone returns a copy not sharing the backing array
func (h Headers) Clone() Headers {
	c := make(Headers, len(h))
	copy(c, h)
	return c
}
