package hello

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/wetrycode/vermin"
)

func newEnviron(path string) vermin.Environ {
	return vermin.Environ{
		vermin.URLSchemeKey:     "http",
		vermin.ServerNameKey:    "example.com",
		vermin.ServerPortKey:    "80",
		vermin.RequestMethodKey: "GET",
		vermin.PathInfoKey:      path,
		vermin.ScriptNameKey:    "",
	}
}

func TestApp(t *testing.T) {
	convey.Convey("test hello app", t, func() {
		var status string
		start := func(s string, _ vermin.Headers) { status = s }

		body, err := App.Call(newEnviron("/"), start)
		convey.So(err, convey.ShouldBeNil)
		convey.So(status, convey.ShouldEqual, "200 OK")
		convey.So(string(body[0]), convey.ShouldEqual, "hello from http://example.com/")

		body, err = App.Call(newEnviron("/json"), start)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(body[0]), convey.ShouldContainSubstring, `"message":"hello"`)

		_, err = App.Call(newEnviron("/missing"), start)
		convey.So(err, convey.ShouldBeNil)
		convey.So(status, convey.ShouldEqual, "404 Not Found")
	})
}
