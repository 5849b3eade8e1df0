package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/asciipath/config"
	"github.com/katalvlaran/asciipath/server"
)

func newServeCmd(a *app) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve map walking over HTTP",
		Args:    cobra.NoArgs,
		Example: `pathwalk serve --addr 127.0.0.1:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.log.IsLevelEnabled(logrus.DebugLevel) {
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}
			srv := server.New(server.Config{
				Addr:         a.cfg.Server.Addr,
				MaxBodyBytes: a.cfg.Server.MaxBody,
				Lenient:      a.cfg.Lenient,
				WalkTimeout:  a.cfg.Server.WalkTimeout,
				MaxSteps:     a.cfg.Server.MaxSteps,
			}, a.log)
			return errors.Wrap(srv.Run(), "server stopped")
		},
	}
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	serveCmd.Flags().Duration("walk-timeout", server.DefaultWalkTimeout, "cut off any walk running longer than this")
	_ = a.v.BindPFlag(config.KeyServerAddr, serveCmd.Flags().Lookup("addr"))
	_ = a.v.BindPFlag(config.KeyWalkTimeout, serveCmd.Flags().Lookup("walk-timeout"))
	return serveCmd
}
