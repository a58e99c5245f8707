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

import (
	"errors"
	"strconv"
)

var (
	ErrMissingEnvironKey error = errors.New("missing required environ key")
	ErrUnknownStatus     error = errors.New("unknown http status code")
	ErrUnknownCharset    error = errors.New("unknown charset")
)

// KeyError a required environ key is absent
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return "missing required environ key: " + strconv.Quote(e.Key)
}

func (e *KeyError) Unwrap() error {
	return ErrMissingEnvironKey
}

// StatusError the status code has no reason phrase in the status table
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return "unknown http status code: " + strconv.Itoa(e.Code)
}

func (e *StatusError) Unwrap() error {
	return ErrUnknownStatus
}
