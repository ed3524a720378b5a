/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/pavansurya09/StudyMate/cmd"

func main() {
	cmd.Execute()
}
