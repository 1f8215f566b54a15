package main

import (
	"context"
	"database/sql"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // register the /debug/pprof handlers

	dig_container "github.com/trezcool/eneo/apps/api/di/dig"
	echoapi "github.com/trezcool/eneo/apps/api/echo"
	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/location"
	logsvc "github.com/trezcool/eneo/services/logger"
)

func main() {
	c := dig_container.New(core.NewConfig)

	must(c.Invoke(func(
		conf *core.Config,
		apiLogger *logsvc.RollbarLogger,
		dbLoggerParam dig_container.DBLoggerParam,
		db *sql.DB,
		locationSvc location.Service,
		server *echoapi.Server,
	) {
		// =========================================================================
		// Initialize App

		apiLogger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build), map[string]interface{}{
			"catalogSource": conf.Catalog.Source,
			"sectors":       locationSvc.Size(),
		})
		defer func() { _ = apiLogger.Sync() }()

		if db != nil {
			dbLogger := dbLoggerParam.Logger
			defer func() {
				if err := db.Close(); err != nil {
					dbLogger.Fatal("Failed to close", err)
				}
			}()
		}
		defer apiLogger.Info("Application stopped")

		// =========================================================================
		// Start Debug Service
		//
		// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
		// /debug/vars - Added to the default mux by importing the expvar package.

		// Expose important info under /debug/vars.
		expvar.NewString("build").Set(conf.Build)
		expvar.NewString("env").Set(conf.Env)
		expvar.NewString("catalogSource").Set(conf.Catalog.Source)
		expvar.NewInt("sectors").Set(int64(locationSvc.Size()))

		go func() {
			if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
				apiLogger.Error(fmt.Sprintf("debug server closed: %v", err), err)
			}
		}()

		// =========================================================================
		// Start API Service

		go func() {
			server.Start()
		}()

		// =========================================================================
		// Shutdown

		select {
		case err := <-server.Errors():
			apiLogger.Fatal(fmt.Sprintf("server error: %v", err), err)

		case sig := <-server.ShutdownSignal():
			apiLogger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

			// give outstanding requests a deadline for completion
			ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
			defer cancel()

			// asking listener to shut down and shed load
			if err := server.Shutdown(ctx); err != nil {
				apiLogger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

				if err = server.Close(); err != nil {
					apiLogger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
				}
			}
		}
	}))
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
