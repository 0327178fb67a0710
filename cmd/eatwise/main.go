package main

import "github.com/Sorin-PSP/EatWise-sub000/cli"

func main() {
	cli.Execute()
}
