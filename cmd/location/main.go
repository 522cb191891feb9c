package main

import "github.com/piresc/fleetlocation/cmd/location/command"

func main() {
	command.Execute()
}
