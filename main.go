package main

import "github.com/gurrutia/videoxt/cmd"

func main() {
	cmd.Execute()
}
