package dig_container

import (
	"context"
	"database/sql"
	"log"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/eneo/apps/api/echo"
	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/catalog"
	"github.com/trezcool/eneo/core/location"
	logsvc "github.com/trezcool/eneo/services/logger"
	"github.com/trezcool/eneo/storage/database"
	sqlxrepos "github.com/trezcool/eneo/storage/database/sqlx"
)

// setUpTimeout bounds database bootstrap and catalog loading at start up.
const setUpTimeout = 30 * time.Second

type (
	LoggerResult struct {
		dig.Out
		APILogger *logsvc.RollbarLogger
		Logger    core.Logger
	}

	DBLoggerParam struct {
		dig.In
		Logger core.Logger `name:"dbLogger"`
	}

	ServerParams struct {
		dig.In
		Conf        *core.Config
		Logger      core.Logger
		LocationSvc location.Service
		Translator  ut.Translator
	}
)

func newLogger(conf *core.Config) LoggerResult {
	logger := logsvc.NewRollbarLogger(logsvc.NewStdLogger("API", conf.Debug), conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return LoggerResult{APILogger: logger, Logger: logger}
}

func newDBLogger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(logsvc.NewStdLogger("DB", conf.Debug), conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

// newDB only connects when the catalog is stored in the database; it returns a nil *sql.DB otherwise.
func newDB(conf *core.Config, loggerParam DBLoggerParam) (*sql.DB, error) {
	if conf.Catalog.Source != core.CatalogSourceDatabase {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), setUpTimeout)
	defer cancel()

	if err := database.CreateIfNotExist(ctx, conf); err != nil {
		return nil, err
	}
	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}
	if err = database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	loggerParam.Logger.Info("database ready", map[string]interface{}{"name": conf.Database.Name})
	return db, nil
}

func newLocationRepository(db *sql.DB) location.Repository {
	if db == nil {
		return nil
	}
	return sqlxrepos.NewLocationRepository(db)
}

func newCatalog(conf *core.Config, repo location.Repository, logger core.Logger) (*catalog.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), setUpTimeout)
	defer cancel()
	return location.LoadCatalog(ctx, conf.Catalog, repo, logger)
}

func newValidator(translator ut.Translator, cat *catalog.Catalog) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	location.InitValidators(validate, translator, cat)
	return validate
}

func newServer(p ServerParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:        p.Conf,
		Logger:      p.Logger,
		LocationSvc: p.LocationSvc,
		Translator:  p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New(newConfig func() *core.Config) *dig.Container {
	c := dig.New()

	must(c.Provide(newConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newDB))
	must(c.Provide(newLocationRepository))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newCatalog))
	must(c.Provide(newValidator))
	must(c.Provide(location.NewService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
