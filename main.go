package main

import "github.com/Beliver-247/UniSchedule/cmd"

func main() {
	cmd.Execute()
}
