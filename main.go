package main

import "prefab-manager/cmd"

func main() {
	cmd.Execute()
}
