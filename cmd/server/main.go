package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/fb-ads-mcp-server/internal/api"
	"github.com/vfg2006/fb-ads-mcp-server/internal/config"
	"github.com/vfg2006/fb-ads-mcp-server/internal/usecases/reporting"
	"github.com/vfg2006/fb-ads-mcp-server/pkg/log"
)

func main() {
	fs := pflag.NewFlagSet("fb-ads-mcp-server", pflag.ExitOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		logrus.Fatal(err)
	}

	cfg, err := config.NewConfig(fs)
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Valida a credencial antes de abrir qualquer transporte. Falhar aqui
	// produz uma mensagem clara em vez de erros em cada chamada de tool.
	tokenResolver := metaclient.NewTokenResolver()
	if _, err := tokenResolver.Resolve(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}

	metaClient := metaclient.NewClient(cfg, tokenResolver)
	metaIntegrator := meta.New(cfg, metaClient)
	reportingService := reporting.NewService(metaIntegrator)

	server := api.New(cfg, metaIntegrator, reportingService)
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
