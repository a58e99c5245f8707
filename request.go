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
	jsoniter "github.com/json-iterator/go"
)

// Request the request object built from the gateway environ.
// The fields are computed once by NewRequest and never re-synced with Environ.
type Request struct {
	// Environ the gateway environ of the request
	Environ Environ `json:"-"`
	// Method the http request method
	Method string `json:"method"`
	// ContentLength the request body length
	ContentLength int64 `json:"contentLength"`
	// PathInfo the path info
	PathInfo string `json:"pathInfo"`
	// QueryString see GetQueryString
	QueryString string `json:"queryString"`
	// RequestURI the full request uri
	RequestURI string `json:"requestUri"`
}

// DefaultRequestCharset the default charset used for the request
const DefaultRequestCharset = "utf-8"

// NewRequest create a Request from the environ
func NewRequest(environ Environ) (*Request, error) {
	uri, err := GetFullRequestURI(environ)
	if err != nil {
		return nil, err
	}
	return &Request{
		Environ:       environ,
		Method:        GetRequestMethod(environ),
		ContentLength: GetContentLength(environ),
		PathInfo:      GetPathInfo(environ),
		QueryString:   GetQueryString(environ),
		RequestURI:    uri,
	}, nil
}

// ToMap convert the request fields to a map
func (r *Request) ToMap() (map[string]interface{}, error) {
	b, err := jsoniter.Marshal(r)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	err = jsoniter.Unmarshal(b, &m)
	return m, err
}
