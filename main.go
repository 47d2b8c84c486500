package main

import "github.com/opensumi/sumi-site/cmd"

func main() {
	cmd.Execute()
}
