package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/nonogram/internal/parser"
	"svw.info/nonogram/internal/validator"
)

var commandCheck = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate puzzles without solving them",
	Run: func(cmd *cobra.Command, args []string) {
		if err := check(cmd, args); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	mainCommand.AddCommand(commandCheck)
}

func check(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	v := validator.New()
	sc := bufio.NewScanner(in)
	num := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		num++
		p, err := parser.Parse(line)
		if err == nil {
			err = v.Validate(cmd.Context(), p)
		}
		if err != nil {
			logrus.WithField("puzzle", num).Error(err)
			continue
		}
		fmt.Printf("puzzle %d: %dx%d ok\n", num, p.Width(), p.Height())
	}
	return sc.Err()
}
