package main

import "github.com/lintang-b-s/bipartite-matching/cmd"

func main() {
	cmd.Execute()
}
