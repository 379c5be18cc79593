package main

import "github.com/dandi-labs/dandi-dashboard/cmd/dandi/cli"

func main() {
	cli.Execute()
}
