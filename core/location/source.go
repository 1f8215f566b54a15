package location

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/catalog"
)

// LoadCatalog builds the process-wide Catalog from the configured source. It is called once at start up.
func LoadCatalog(ctx context.Context, conf core.CatalogConfig, repo Repository, logger core.Logger) (*catalog.Catalog, error) {
	var (
		table catalog.Table
		err   error
	)
	switch conf.Source {
	case core.CatalogSourceBuiltin, "":
		table = DefaultTable
	case core.CatalogSourceFile:
		if table, err = ReadTableFile(conf.Path); err != nil {
			return nil, err
		}
	case core.CatalogSourceDatabase:
		if repo == nil {
			return nil, errors.New("database catalog source requires a repository")
		}
		if table, err = repo.LoadTable(ctx); err != nil {
			return nil, errors.Wrap(err, "loading location table")
		}
	default:
		return nil, errors.Errorf("unknown catalog source %q", conf.Source)
	}

	cat, err := catalog.New(table)
	if err != nil {
		return nil, errors.Wrapf(err, "building catalog from %s source", sourceName(conf.Source))
	}
	logger.Info(fmt.Sprintf("location catalog loaded from %s source", sourceName(conf.Source)), map[string]interface{}{
		"provinces": len(cat.Categories()),
		"sectors":   cat.Len(),
	})
	return cat, nil
}

// ReadTableFile decodes a {province: {district: [sectors...]}} YAML (or JSON) document.
func ReadTableFile(path string) (catalog.Table, error) {
	if path == "" {
		return nil, errors.New("catalog file path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading catalog file")
	}
	var table catalog.Table
	if err = yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrapf(err, "decoding catalog file %s", path)
	}
	return table, nil
}

func sourceName(src string) string {
	if src == "" {
		return core.CatalogSourceBuiltin
	}
	return src
}
