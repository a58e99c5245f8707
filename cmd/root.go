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

package cmd

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/wetrycode/vermin"
	"github.com/wetrycode/vermin/gateway"
)

var rootApp vermin.Application
var cmdLog = vermin.GetLogger("command")

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "vermin",
	Short: "vermin is a tiny gateway request/response toolkit",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the application over http",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := vermin.Config.GetString("server.addr")
		cmdLog.Infof("serving on %s", addr)
		err := newServer(addr, rootApp).ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func newServer(addr string, app vermin.Application) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      gateway.Handler(app),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(app vermin.Application) {
	rootApp = app
	err := RootCmd.Execute()
	if err != nil {
		cmdLog.Errorf("command error %s", err.Error())
		os.Exit(1)
	}
}

func init() {
	vermin.Config.SetDefault("server.addr", ":8080")
	serveCmd.Flags().StringP("addr", "a", "", "listen address, default from settings server.addr")
	vermin.Config.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	RootCmd.AddCommand(serveCmd)
}
