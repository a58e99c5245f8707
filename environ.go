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
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// Environ the per-request gateway environment supplied by the hosting server
type Environ map[string]string

// Well known environ keys
const (
	RequestMethodKey = "REQUEST_METHOD"
	ContentLengthKey = "CONTENT_LENGTH"
	ContentTypeKey   = "CONTENT_TYPE"
	ScriptNameKey    = "SCRIPT_NAME"
	PathInfoKey      = "PATH_INFO"
	QueryStringKey   = "QUERY_STRING"
	URLSchemeKey     = "wsgi.url_scheme"
	HTTPHostKey      = "HTTP_HOST"
	ServerNameKey    = "SERVER_NAME"
	ServerPortKey    = "SERVER_PORT"
	ServerProtoKey   = "SERVER_PROTOCOL"
	RemoteAddrKey    = "REMOTE_ADDR"
)

// Get returns the value of key or def when the key is absent
func (e Environ) Get(key string, def string) string {
	if value, ok := e[key]; ok {
		return value
	}
	return def
}

// Lookup returns the value of key or a *KeyError when the key is absent
func (e Environ) Lookup(key string) (string, error) {
	value, ok := e[key]
	if !ok {
		return "", &KeyError{Key: key}
	}
	return value, nil
}

// Copy returns a shallow copy of the environ
func (e Environ) Copy() Environ {
	c := make(Environ, len(e))
	for k, v := range e {
		c[k] = v
	}
	return c
}

// GetRequestMethod get the http request method used by the request
func GetRequestMethod(environ Environ) string {
	return environ.Get(RequestMethodKey, "get")
}

// GetContentLength get the content length of the request.
// An absent or unparsable value is 0.
func GetContentLength(environ Environ) int64 {
	value, ok := environ[ContentLengthKey]
	if !ok {
		return 0
	}
	// cast parses with base 0, a leading zero would be read as octal
	value = strings.TrimLeft(strings.TrimSpace(value), "0")
	if value == "" {
		return 0
	}
	return cast.ToInt64(value)
}

// GetScriptName get the script name of the request
func GetScriptName(environ Environ) string {
	return environ.Get(ScriptNameKey, "/")
}

// GetPathInfo get the path info of the request
func GetPathInfo(environ Environ) string {
	return environ.Get(PathInfoKey, "/")
}

// GetQueryString get the query string of the request.
// It reads PATH_INFO rather than QUERY_STRING, callers that need the raw
// query should read QueryStringKey directly.
func GetQueryString(environ Environ) string {
	return environ.Get(PathInfoKey, "")
}

// GetFullRequestURI rebuild the full request uri from the environ.
// wsgi.url_scheme is always required, SERVER_NAME and SERVER_PORT
// only when HTTP_HOST is empty.
func GetFullRequestURI(environ Environ) (string, error) {
	scheme, err := environ.Lookup(URLSchemeKey)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	if host := environ[HTTPHostKey]; host != "" {
		b.WriteString(host)
	} else {
		name, err := environ.Lookup(ServerNameKey)
		if err != nil {
			return "", err
		}
		port, err := environ.Lookup(ServerPortKey)
		if err != nil {
			return "", err
		}
		b.WriteString(name)
		defaultPort := "80"
		if scheme == "https" {
			defaultPort = "443"
		}
		if port != defaultPort {
			b.WriteString(":")
			b.WriteString(port)
		}
	}
	b.WriteString(quotePath(environ[ScriptNameKey]))
	b.WriteString(quotePath(environ[PathInfoKey]))
	if query := environ[QueryStringKey]; query != "" {
		b.WriteString("?")
		b.WriteString(query)
	}
	return b.String(), nil
}

// quotePath percent-encode a path keeping '/' literal
func quotePath(p string) string {
	if p == "" {
		return ""
	}
	u := url.URL{Path: p}
	return u.EscapedPath()
}

// GetContentType return the full content type string with charset for a mimetype.
// The charset parameter is only added to text like mimetypes.
func GetContentType(mimetype string, charset string) string {
	if strings.HasPrefix(mimetype, "text/") ||
		mimetype == "application/xml" ||
		(strings.HasPrefix(mimetype, "application/") && strings.HasSuffix(mimetype, "+xml")) {
		return mimetype + "; charset=" + charset
	}
	return mimetype
}
