package gateway

import (
	"crypto/tls"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smartystreets/goconvey/convey"
	"github.com/wetrycode/vermin"
)

var echoApp = vermin.ApplicationFunc(func(environ vermin.Environ, start vermin.StartResponse) ([][]byte, error) {
	request, err := vermin.NewRequest(environ)
	if err != nil {
		return nil, err
	}
	response, err := vermin.NewResponse(
		vermin.WithStatusCode(202),
		vermin.WithHeaders(vermin.Headers{{Key: "X-Uri", Value: request.RequestURI}}),
		vermin.WithText("echo "+request.Method+" "+request.PathInfo),
	)
	if err != nil {
		return nil, err
	}
	return response.Call(environ, start)
})

func TestNewEnviron(t *testing.T) {
	convey.Convey("test environ from http request", t, func() {
		r := httptest.NewRequest(http.MethodPost, "http://example.com:8080/items/1?page=2", strings.NewReader("abc"))
		r.Header.Set("Content-Type", "text/plain")
		r.Header.Set("X-Forwarded-For", "10.0.0.1")
		environ := NewEnviron(r)
		convey.So(environ[vermin.RequestMethodKey], convey.ShouldEqual, "POST")
		convey.So(environ[vermin.PathInfoKey], convey.ShouldEqual, "/items/1")
		convey.So(environ[vermin.QueryStringKey], convey.ShouldEqual, "page=2")
		convey.So(environ[vermin.ScriptNameKey], convey.ShouldEqual, "")
		convey.So(environ[vermin.ContentLengthKey], convey.ShouldEqual, "3")
		convey.So(environ[vermin.ContentTypeKey], convey.ShouldEqual, "text/plain")
		convey.So(environ[vermin.ServerNameKey], convey.ShouldEqual, "example.com")
		convey.So(environ[vermin.ServerPortKey], convey.ShouldEqual, "8080")
		convey.So(environ[vermin.HTTPHostKey], convey.ShouldEqual, "example.com:8080")
		convey.So(environ[vermin.URLSchemeKey], convey.ShouldEqual, "http")
		convey.So(environ["HTTP_X_FORWARDED_FOR"], convey.ShouldEqual, "10.0.0.1")
		_, ok := environ["HTTP_CONTENT_TYPE"]
		convey.So(ok, convey.ShouldBeFalse)
	})
	convey.Convey("test environ default port", t, func() {
		r := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
		r.TLS = &tls.ConnectionState{}
		environ := NewEnviron(r)
		convey.So(environ[vermin.URLSchemeKey], convey.ShouldEqual, "https")
		convey.So(environ[vermin.ServerNameKey], convey.ShouldEqual, "example.com")
		convey.So(environ[vermin.ServerPortKey], convey.ShouldEqual, "443")
	})
}

func TestHandler(t *testing.T) {
	convey.Convey("test handler serves the application", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com/hello?x=1", nil)
		Handler(echoApp).ServeHTTP(w, r)
		convey.So(w.Code, convey.ShouldEqual, 202)
		convey.So(w.Body.String(), convey.ShouldEqual, "echo GET /hello")
		convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "text/plain; charset=utf-8")
		convey.So(w.Header().Get("Content-Length"), convey.ShouldEqual, "15")
		convey.So(w.Header().Get("X-Uri"), convey.ShouldEqual, "http://example.com/hello?x=1")
	})
	convey.Convey("test handler keeps the last content length", t, func() {
		app := vermin.ApplicationFunc(func(environ vermin.Environ, start vermin.StartResponse) ([][]byte, error) {
			response, err := vermin.NewResponse(vermin.WithText("a"))
			if err != nil {
				return nil, err
			}
			response.SetData([]byte("abcd"))
			return response.Call(environ, start)
		})
		w := httptest.NewRecorder()
		Handler(app).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		convey.So(w.Header().Values("Content-Length"), convey.ShouldResemble, []string{"4"})
		convey.So(w.Body.String(), convey.ShouldEqual, "abcd")
	})
	convey.Convey("test handler drops invalid headers", t, func() {
		app := vermin.ApplicationFunc(func(environ vermin.Environ, start vermin.StartResponse) ([][]byte, error) {
			start("200 OK", vermin.Headers{{Key: "Bad Name", Value: "1"}, {Key: "X-Ok", Value: "1"}})
			return [][]byte{[]byte("a"), []byte("b")}, nil
		})
		w := httptest.NewRecorder()
		Handler(app).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		convey.So(w.Code, convey.ShouldEqual, 200)
		convey.So(w.Header().Get("X-Ok"), convey.ShouldEqual, "1")
		convey.So(len(w.Header()), convey.ShouldEqual, 1)
		convey.So(w.Body.String(), convey.ShouldEqual, "ab")
	})
	convey.Convey("test handler application errors", t, func() {
		apps := []vermin.Application{
			vermin.ApplicationFunc(func(environ vermin.Environ, start vermin.StartResponse) ([][]byte, error) {
				return nil, errors.New("boom")
			}),
			vermin.ApplicationFunc(func(environ vermin.Environ, start vermin.StartResponse) ([][]byte, error) {
				return [][]byte{[]byte("never started")}, nil
			}),
			vermin.ApplicationFunc(func(environ vermin.Environ, start vermin.StartResponse) ([][]byte, error) {
				start("OK", nil)
				return nil, nil
			}),
		}
		for _, app := range apps {
			w := httptest.NewRecorder()
			Handler(app).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			convey.So(w.Code, convey.ShouldEqual, http.StatusInternalServerError)
		}
	})
}

func TestParseStatus(t *testing.T) {
	convey.Convey("test parse status line", t, func() {
		code, err := parseStatus("404 Not Found")
		convey.So(err, convey.ShouldBeNil)
		convey.So(code, convey.ShouldEqual, 404)
		code, err = parseStatus("204")
		convey.So(err, convey.ShouldBeNil)
		convey.So(code, convey.ShouldEqual, 204)
		_, err = parseStatus("")
		convey.So(errors.Is(err, ErrInvalidStatusLine), convey.ShouldBeTrue)
		_, err = parseStatus("42 Nope")
		convey.So(errors.Is(err, ErrInvalidStatusLine), convey.ShouldBeTrue)
	})
}

func TestGin(t *testing.T) {
	convey.Convey("test gin adapter", t, func() {
		gin.SetMode(gin.TestMode)
		g := gin.New()
		g.NoRoute(Gin(echoApp))
		server := httptest.NewServer(g)
		defer server.Close()

		resp, err := http.Get(server.URL + "/from/gin")
		convey.So(err, convey.ShouldBeNil)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		convey.So(err, convey.ShouldBeNil)
		convey.So(resp.StatusCode, convey.ShouldEqual, 202)
		convey.So(string(body), convey.ShouldEqual, "echo GET /from/gin")
		convey.So(resp.Header.Get("X-Uri"), convey.ShouldEqual, server.URL+"/from/gin")
	})
}
