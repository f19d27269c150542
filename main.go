package main

import "github.com/macaudit/macaudit/cmd"

func main() {
	cmd.Execute()
}
