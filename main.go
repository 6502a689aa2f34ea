package main

import "github.com/netl-modeling/gotriga/cmd"

func main() {
	cmd.Execute()
}
