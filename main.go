package main

import "github.com/honganh1206/booknest/cmd"

func main() {
	cmd.Execute()
}
