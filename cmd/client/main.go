// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/private-vpn/internal/adapter"
	"github.com/MKhiriev/private-vpn/internal/client"
	"github.com/MKhiriev/private-vpn/internal/config"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/internal/tui"
	"github.com/MKhiriev/private-vpn/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	log, closeLog := logger.NewClientLogger("private-vpn-client", logger.DefaultClientLogPath())
	defer func() { _ = closeLog() }()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return fmt.Errorf("get configs: %w", err)
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create server adapter")
		return fmt.Errorf("create server adapter: %w", err)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewClientServices(storages.Records, serverAdapter, buildInfo, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Err(err).Msg("error creating ui")
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return fmt.Errorf("init client app: %w", err)
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}
	return nil
}
