package main

import "github.com/cmmoran/reusablegen/cmd"

func main() {
	cmd.Execute()
}
