// Package main provides the cachescape command-line tool.
package main

import "github.com/sarchlab/cachescape/cachescape/cmd"

func main() {
	cmd.Execute()
}
