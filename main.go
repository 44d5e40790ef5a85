package main

import (
	"aicodegen/cmd"
)

var (
	VerStatus = "Beta"
	VerNumber = "0.1.0"
	VerCommit = "dev"
)

func main() {
	cmd.Execute(cmd.VersionInfo{
		Status: VerStatus,
		Number: VerNumber,
		Commit: VerCommit,
	})
}
