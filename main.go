package main

import "appserve/cmd"

func main() {
	cmd.Execute()
}
