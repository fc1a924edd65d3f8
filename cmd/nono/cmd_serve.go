package main

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/nonogram/internal/adapters/http"
	"svw.info/nonogram/internal/infrastructure/storage"
	"svw.info/nonogram/internal/linesolver"
	"svw.info/nonogram/internal/scheduler"
	"svw.info/nonogram/internal/usecase"
	"svw.info/nonogram/internal/validator"
)

var (
	listenAddr string
	dataDir    string
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.NoArgs,
}

func init() {
	commandServe.Flags().StringVarP(&listenAddr, "listen", "l", ":8080", "listen address")
	commandServe.Flags().StringVarP(&dataDir, "data", "d", "data", "directory for saved puzzles")
	mainCommand.AddCommand(commandServe)
}

func serve() error {
	svc := usecase.NewService(
		scheduler.New(linesolver.New()),
		validator.New(),
		storage.NewFS(dataDir),
	)
	h := httpadapter.New(svc, logrus.StandardLogger())
	logrus.WithField("listen", listenAddr).Info("serving nonogram API")
	return http.ListenAndServe(listenAddr, h.Routes())
}
