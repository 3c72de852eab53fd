package main

import "github.com/NenX/go-dyloading/cmd"

func main() {
	cmd.Execute()
}
