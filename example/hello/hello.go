package hello

import (
	"github.com/wetrycode/vermin"
)

type greeting struct {
	Message string `json:"message"`
	Method  string `json:"method"`
	URI     string `json:"uri"`
}

// App greets the caller, /json answers with a json document
var App vermin.Application = vermin.ApplicationFunc(func(environ vermin.Environ, start vermin.StartResponse) ([][]byte, error) {
	request, err := vermin.NewRequest(environ)
	if err != nil {
		return nil, err
	}
	var response *vermin.Response
	switch request.PathInfo {
	case "/json":
		response, err = vermin.NewResponse(vermin.WithJSON(greeting{
			Message: "hello",
			Method:  request.Method,
			URI:     request.RequestURI,
		}))
	case "/", "":
		response, err = vermin.NewResponse(vermin.WithText("hello from " + request.RequestURI))
	default:
		response, err = vermin.NewResponse(vermin.WithStatusCode(404), vermin.WithText("not found"))
	}
	if err != nil {
		return nil, err
	}
	return response.Call(environ, start)
})
