package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/nonogram/internal/linesolver"
	"svw.info/nonogram/internal/parser"
	"svw.info/nonogram/internal/render"
	"svw.info/nonogram/internal/scheduler"
	"svw.info/nonogram/internal/usecase"
	"svw.info/nonogram/internal/validator"
	"svw.info/nonogram/puzzles"
)

var (
	themeName string
	showTrace bool
	useDemo   bool
)

var commandSolve = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve puzzles, one encoded puzzle per input line",
	Run: func(cmd *cobra.Command, args []string) {
		if err := solve(cmd, args); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	commandSolve.Flags().StringVarP(&themeName, "theme", "t", "unicode", "display theme (unicode, ascii, brief)")
	commandSolve.Flags().BoolVar(&showTrace, "trace", true, "print the inference trace of every pass")
	commandSolve.Flags().BoolVar(&useDemo, "demo", false, "solve the embedded sample puzzles instead of reading input")
	mainCommand.AddCommand(commandSolve)
}

func solve(cmd *cobra.Command, args []string) error {
	theme, err := render.ParseTheme(themeName)
	if err != nil {
		return err
	}
	rend := render.New(theme)
	svc := usecase.NewService(scheduler.New(linesolver.New()), validator.New(), nil)

	var in io.Reader = os.Stdin
	switch {
	case useDemo:
		in = strings.NewReader(strings.Join(puzzles.Samples(), "\n"))
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	sc := bufio.NewScanner(in)
	num := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		num++
		// A failed puzzle must not abort the rest of the batch.
		if err := solveOne(cmd, svc, rend, line, num); err != nil {
			logrus.WithField("puzzle", num).Error(err)
		}
	}
	return sc.Err()
}

func solveOne(cmd *cobra.Command, svc *usecase.Service, rend *render.Renderer, line string, num int) error {
	p, err := parser.Parse(line)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	sol, stats, err := svc.Solve(cmd.Context(), p)
	if sol == nil {
		return err
	}
	if showTrace {
		fmt.Print(rend.Trace(sol.Trace))
	}
	fmt.Print(rend.Grid(sol.Grid))
	fmt.Printf("puzzle %d: %v after %d passes, %d inferences, %v\n",
		num, sol.Status, stats.Passes, stats.Inferences, stats.Duration)
	return err
}
