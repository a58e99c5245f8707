package main

import (
	"github.com/wetrycode/vermin/cmd"
	"github.com/wetrycode/vermin/example/hello"
)

func main() {
	cmd.Execute(hello.App)
}
