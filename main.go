package main

import (
	"github.com/joho/godotenv"
	"github.com/mj1618/a11ycheck/cmd"
)

func main() {
	// A missing .env is fine; A11YCHECK_* variables may come from the shell.
	_ = godotenv.Load()
	cmd.Execute()
}
