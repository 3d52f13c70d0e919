package main

import "github.com/takaishi/gh-stale-repos/cmd"

func main() {
	cmd.Execute()
}
