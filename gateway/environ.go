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

package gateway

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/wetrycode/vermin"
)

// NewEnviron build the gateway environ of an http request.
// Meta variables follow CGI/1.1, request headers are added as HTTP_* keys.
func NewEnviron(r *http.Request) vermin.Environ {
	environ := vermin.Environ{
		vermin.RequestMethodKey: r.Method,
		vermin.ScriptNameKey:    "",
		vermin.PathInfoKey:      r.URL.Path,
		vermin.QueryStringKey:   r.URL.RawQuery,
		vermin.ServerProtoKey:   r.Proto,
		vermin.RemoteAddrKey:    r.RemoteAddr,
		vermin.URLSchemeKey:     "http",
	}
	if r.TLS != nil {
		environ[vermin.URLSchemeKey] = "https"
	}

	host, port := splitHostPort(r.Host, environ[vermin.URLSchemeKey])
	environ[vermin.ServerNameKey] = host
	environ[vermin.ServerPortKey] = port

	if r.ContentLength >= 0 {
		environ[vermin.ContentLengthKey] = strconv.FormatInt(r.ContentLength, 10)
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		environ[vermin.ContentTypeKey] = ct
	}

	if r.Host != "" {
		environ[vermin.HTTPHostKey] = r.Host
	}
	for name, values := range r.Header {
		key := strings.ToUpper(name)
		if key == "CONTENT-TYPE" || key == "CONTENT-LENGTH" || key == "HOST" {
			continue
		}
		environ["HTTP_"+strings.ReplaceAll(key, "-", "_")] = strings.Join(values, ", ")
	}
	return environ
}

func splitHostPort(hostport string, scheme string) (string, string) {
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		host = hostport
		port = "80"
		if scheme == "https" {
			port = "443"
		}
	}
	return host, port
}
