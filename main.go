package main

import "github.com/easyhired/resumer/cmd"

func main() {
	cmd.Execute()
}
