package main

import (
	"github.com/gin-gonic/gin"
	"github.com/wetrycode/vermin"
	"github.com/wetrycode/vermin/example/hello"
	"github.com/wetrycode/vermin/gateway"
)

func main() {
	g := gin.New()
	g.Use(gin.Recovery())
	g.NoRoute(gateway.Gin(hello.App))
	addr := vermin.Config.GetString("server.addr")
	if addr == "" {
		addr = ":8080"
	}
	if err := g.Run(addr); err != nil {
		panic(err)
	}
}
