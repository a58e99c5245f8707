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

// StartResponse the callback the hosting server passes to an application,
// it receives the status line and the response headers
type StartResponse func(status string, headers Headers)

// Application the gateway application contract, the hosting server calls it
// once per request and transmits the returned chunks in order
type Application interface {
	Call(environ Environ, start StartResponse) ([][]byte, error)
}

// ApplicationFunc adapter allowing an ordinary function to be used as an Application
type ApplicationFunc func(environ Environ, start StartResponse) ([][]byte, error)

// Call calls f(environ, start)
func (f ApplicationFunc) Call(environ Environ, start StartResponse) ([][]byte, error) {
	return f(environ, start)
}
