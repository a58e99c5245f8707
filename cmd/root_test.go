package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/wetrycode/vermin"
)

func TestRootCmd(t *testing.T) {
	convey.Convey("test root command help", t, func() {
		buf := new(bytes.Buffer)
		RootCmd.SetOut(buf)
		RootCmd.SetErr(buf)
		RootCmd.SetArgs([]string{"--help"})
		defer RootCmd.SetArgs(nil)
		convey.So(RootCmd.Execute(), convey.ShouldBeNil)
		convey.So(buf.String(), convey.ShouldContainSubstring, "serve")
	})
	convey.Convey("test default listen address", t, func() {
		convey.So(vermin.Config.GetString("server.addr"), convey.ShouldNotBeEmpty)
		convey.So(serveCmd.Flags().Lookup("addr"), convey.ShouldNotBeNil)
	})
}

func TestNewServer(t *testing.T) {
	convey.Convey("test server hosts the application", t, func() {
		app := vermin.ApplicationFunc(func(environ vermin.Environ, start vermin.StartResponse) ([][]byte, error) {
			response, err := vermin.NewResponse(vermin.WithText("served"))
			if err != nil {
				return nil, err
			}
			return response.Call(environ, start)
		})
		server := newServer("127.0.0.1:0", app)
		convey.So(server.Addr, convey.ShouldEqual, "127.0.0.1:0")

		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		convey.So(w.Code, convey.ShouldEqual, 200)
		convey.So(w.Body.String(), convey.ShouldEqual, "served")
	})
}
