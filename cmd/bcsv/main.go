/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/varkrai/bcsv/cmd/bcsv/cmd"

func main() {
	cmd.Execute()
}
