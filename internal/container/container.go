// Package container centralizes the creation and wiring of application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/finquery/internal/classify"
	"fjacquet/finquery/internal/config"
	"fjacquet/finquery/internal/export"
	"fjacquet/finquery/internal/logging"
	"fjacquet/finquery/internal/query"
	"fjacquet/finquery/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; components are reached only through getters.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.DatasetStore
	holder     *store.Holder
	classifier *classify.Classifier
	engine     *query.Engine
	exporter   *export.Exporter
}

// NewContainer wires all application dependencies from the configuration:
// the dataset store and snapshot holder, the compiled category classifier,
// the query engine, and the CSV exporter. The initial dataset snapshot is
// loaded here; a malformed rule table fails construction.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	datasetStore := store.NewDatasetStore(cfg.Data.File, cfg.Data.RulesFile, logger)

	holder := store.NewHolder(datasetStore)
	if _, err := holder.Reload(); err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	rules, err := datasetStore.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load category rules: %w", err)
	}

	classifier, err := classify.New(rules, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to compile category rules: %w", err)
	}

	engine := query.NewEngine(classifier, logger)
	exporter := export.NewExporter(classifier.Classify, logger)

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      datasetStore,
		holder:     holder,
		classifier: classifier,
		engine:     engine,
		exporter:   exporter,
	}, nil
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the application configuration.
func (c *Container) Config() *config.Config { return c.config }

// Store returns the dataset store.
func (c *Container) Store() *store.DatasetStore { return c.store }

// Holder returns the dataset snapshot holder.
func (c *Container) Holder() *store.Holder { return c.holder }

// Classifier returns the compiled category classifier.
func (c *Container) Classifier() *classify.Classifier { return c.classifier }

// Engine returns the query engine.
func (c *Container) Engine() *query.Engine { return c.engine }

// Exporter returns the CSV exporter.
func (c *Container) Exporter() *export.Exporter { return c.exporter }
