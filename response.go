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
	"bytes"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	// DefaultCharset the default charset used in the response
	DefaultCharset = "utf-8"
	// DefaultMimetype the default mimetype used in the response
	DefaultMimetype = "text/plain"
	// DefaultStatus the default http status code
	DefaultStatus = 200
)

// Response the response object sent back to the hosting server
type Response struct {
	// StatusCode http status code used to build the status line
	StatusCode int
	// Status the status line given by WithStatusLine, StatusCode is not derived from it
	Status string
	// Headers response headers
	Headers Headers
	// Body response body chunks
	Body [][]byte
	// Charset used to encode text bodies and annotate text content types
	Charset string
}

// ResponseOption NewResponse optional parameters
type ResponseOption func(c *responseConfig)

type responseConfig struct {
	body            func(r *Response) error
	statusCode      int
	hasStatusCode   bool
	statusLine      string
	headers         Headers
	mimetype        string
	defaultMimetype string
	contentType     string
	charset         string
}

// WithText use a text body, encoded with the response charset
func WithText(text string) ResponseOption {
	return func(c *responseConfig) {
		c.body = func(r *Response) error {
			return r.SetText(text)
		}
	}
}

// WithBytes use a bytes body
func WithBytes(data []byte) ResponseOption {
	return func(c *responseConfig) {
		c.body = func(r *Response) error {
			r.SetData(data)
			return nil
		}
	}
}

// WithChunks use already chunked body, stored as is without Content-Length
func WithChunks(chunks [][]byte) ResponseOption {
	return func(c *responseConfig) {
		c.body = func(r *Response) error {
			r.Body = chunks
			return nil
		}
	}
}

// WithJSON marshal v as the body, the mimetype falls back to application/json
func WithJSON(v interface{}) ResponseOption {
	return func(c *responseConfig) {
		c.defaultMimetype = "application/json"
		c.body = func(r *Response) error {
			data, err := jsoniter.Marshal(v)
			if err != nil {
				return err
			}
			r.SetData(data)
			return nil
		}
	}
}

// WithStatusCode set the http status code
func WithStatusCode(code int) ResponseOption {
	return func(c *responseConfig) {
		c.statusCode = code
		c.hasStatusCode = true
	}
}

// WithStatusLine set a preformatted status line like "404 NOT FOUND"
func WithStatusLine(status string) ResponseOption {
	return func(c *responseConfig) {
		c.statusLine = status
	}
}

// WithHeaders set the initial headers, they are copied
func WithHeaders(headers Headers) ResponseOption {
	return func(c *responseConfig) {
		c.headers = headers
	}
}

// WithMimetype set the mimetype, the charset is appended to text mimetypes
func WithMimetype(mimetype string) ResponseOption {
	return func(c *responseConfig) {
		c.mimetype = mimetype
	}
}

// WithContentType set the full content type, used verbatim over the mimetype
func WithContentType(contentType string) ResponseOption {
	return func(c *responseConfig) {
		c.contentType = contentType
	}
}

// WithCharset override DefaultCharset
func WithCharset(charset string) ResponseOption {
	return func(c *responseConfig) {
		c.charset = charset
	}
}

// NewResponse create a new Response.
// The content type and the status are resolved before the body so that
// text bodies are always encoded with the response charset.
func NewResponse(opts ...ResponseOption) (*Response, error) {
	c := &responseConfig{
		defaultMimetype: DefaultMimetype,
		charset:         DefaultCharset,
	}
	for _, o := range opts {
		o(c)
	}
	r := &Response{
		StatusCode: DefaultStatus,
		Headers:    c.headers.Clone(),
		Body:       make([][]byte, 0),
		Charset:    c.charset,
	}

	contentType := c.contentType
	if contentType == "" {
		mimetype := c.mimetype
		if mimetype == "" && !r.Headers.Has("Content-Type", ContentTypeKey) {
			mimetype = c.defaultMimetype
		}
		if mimetype != "" {
			contentType = GetContentType(mimetype, r.Charset)
		}
	}
	if contentType != "" {
		r.Headers.Add(ContentTypeKey, contentType)
	}

	if c.hasStatusCode {
		r.StatusCode = c.statusCode
	}
	if c.statusLine != "" {
		r.Status = c.statusLine
	}

	if c.body != nil {
		if err := c.body(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// SetData replace the body with data and append its Content-Length header.
// A previous Content-Length header is kept.
func (r *Response) SetData(data []byte) {
	r.Body = [][]byte{data}
	r.Headers.Add("Content-Length", strconv.Itoa(len(data)))
}

// SetText encode text with the response charset then SetData
func (r *Response) SetText(text string) error {
	data, err := encodeText(text, r.Charset)
	if err != nil {
		return err
	}
	r.SetData(data)
	return nil
}

// WSGIHeaders the headers handed to StartResponse
func (r *Response) WSGIHeaders() Headers {
	return r.Headers
}

// WSGIResponse the headers and the body chunks
func (r *Response) WSGIResponse() (Headers, [][]byte) {
	return r.WSGIHeaders(), r.Body
}

// Call start the response with the status line of StatusCode and return the body.
// Every call starts the response again.
func (r *Response) Call(environ Environ, start StartResponse) ([][]byte, error) {
	headers, body := r.WSGIResponse()
	status, err := StatusLine(r.StatusCode)
	if err != nil {
		return nil, err
	}
	start(status, headers)
	return body, nil
}

// String get response text from the body chunks
func (r *Response) String() string {
	return string(bytes.Join(r.Body, nil))
}

func encodeText(text string, charset string) ([]byte, error) {
	if charset == "" {
		charset = DefaultCharset
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, charset)
	}
	return enc.NewEncoder().Bytes([]byte(text))
}
