/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

package main

import "github.com/jpl-au/pathnorm/cmd"

func main() {
	cmd.Execute()
}
