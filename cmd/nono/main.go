package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	logrus.StandardLogger().SetLevel(logrus.InfoLevel)
}

var mainCommand = &cobra.Command{
	Use:   "nono",
	Short: "A nonogram hint dispenser",
	Long: "nono applies logically forced deductions to a nonogram pass by\n" +
		"pass and reports every one of them as an inspectable hint. It\n" +
		"never guesses: a puzzle the basic techniques cannot finish is\n" +
		"left partially solved.",
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
