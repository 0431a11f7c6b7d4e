package main

import "github.com/wpscout/wpscout/cmd/wpscout"

func main() { wpscout.Execute() }
