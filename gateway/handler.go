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

// Package gateway hosts vermin applications behind net/http and gin.
package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/wetrycode/vermin"
	"golang.org/x/net/http/httpguts"
)

var (
	ErrStartResponseNotCalled error = errors.New("application returned without starting the response")
	ErrInvalidStatusLine      error = errors.New("invalid status line")
)

var gatewayLog *logrus.Entry = vermin.GetLogger("gateway")

// cgiHeaderNames CGI style header keys translated to their http names
var cgiHeaderNames = map[string]string{
	vermin.ContentTypeKey:   "Content-Type",
	vermin.ContentLengthKey: "Content-Length",
}

type started struct {
	called  bool
	status  string
	headers vermin.Headers
}

// Handler serve app for every http request
func Handler(app vermin.Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serve(app, w, r)
	})
}

// Gin adapt app to a gin handler
func Gin(app vermin.Application) gin.HandlerFunc {
	return gin.WrapH(Handler(app))
}

func serve(app vermin.Application, w http.ResponseWriter, r *http.Request) {
	environ := NewEnviron(r)
	log := gatewayLog.WithFields(logrus.Fields{
		"requestId": vermin.GetUUID(),
		"method":    r.Method,
		"path":      r.URL.Path,
	})

	st := &started{}
	chunks, err := app.Call(environ, func(status string, headers vermin.Headers) {
		st.called = true
		st.status = status
		st.headers = headers
	})
	if err == nil && !st.called {
		err = ErrStartResponseNotCalled
	}
	var code int
	if err == nil {
		code, err = parseStatus(st.status)
	}
	if err != nil {
		log.Errorf("application error %s", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeHeaders(w.Header(), st.headers, log)
	w.WriteHeader(code)
	for _, chunk := range chunks {
		if _, err := w.Write(chunk); err != nil {
			log.Warnf("write response body error %s", err.Error())
			return
		}
	}
	log.Debugf("served %s", st.status)
}

// parseStatus read the status code of a status line like "200 OK"
func parseStatus(status string) (int, error) {
	field := status
	if i := strings.IndexByte(status, ' '); i >= 0 {
		field = status[:i]
	}
	code, err := strconv.Atoi(field)
	if err != nil || code < 100 || code > 999 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatusLine, status)
	}
	return code, nil
}

func writeHeaders(dst http.Header, headers vermin.Headers, log *logrus.Entry) {
	for _, header := range headers {
		key := header.Key
		if name, ok := cgiHeaderNames[strings.ToUpper(key)]; ok {
			key = name
		}
		if !httpguts.ValidHeaderFieldName(key) || !httpguts.ValidHeaderFieldValue(header.Value) {
			log.Warnf("drop invalid response header %q", header.Key)
			continue
		}
		// the last Content-Length describes the current body
		if http.CanonicalHeaderKey(key) == "Content-Length" {
			dst.Set(key, header.Value)
			continue
		}
		dst.Add(key, header.Value)
	}
}
