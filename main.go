package main

import "github.com/kallumq/Data-Display-site/cmd"

func main() {
	cmd.Execute()
}
