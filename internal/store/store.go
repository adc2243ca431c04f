// Package store provides loading and saving of the transaction dataset and
// the category rule table from YAML files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/finquery/internal/classify"
	"fjacquet/finquery/internal/logging"
	"fjacquet/finquery/internal/models"

	"gopkg.in/yaml.v3"
)

// DatasetStore manages the persisted dataset file.
type DatasetStore struct {
	DataFile  string
	RulesFile string
	logger    logging.Logger
}

// NewDatasetStore creates a store for the given dataset and rules files.
func NewDatasetStore(dataFile, rulesFile string, logger logging.Logger) *DatasetStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &DatasetStore{
		DataFile:  dataFile,
		RulesFile: rulesFile,
		logger:    logger,
	}
}

// Load reads the dataset from the data file. A missing file is not an
// error: it yields an empty dataset, the state before anything has been
// persisted yet.
func (s *DatasetStore) Load() (*models.Dataset, error) {
	data, err := os.ReadFile(s.DataFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.DataFile).
				Debug("Dataset file not found, starting empty")
			return &models.Dataset{Transactions: map[string][]models.Transaction{}}, nil
		}
		return nil, fmt.Errorf("error reading dataset file: %w", err)
	}

	var ds models.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("error parsing dataset file: %w", err)
	}
	if ds.Transactions == nil {
		ds.Transactions = map[string][]models.Transaction{}
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.DataFile},
		logging.Field{Key: logging.FieldCount, Value: len(ds.Accounts)},
	).Debug("Loaded dataset")
	return &ds, nil
}

// Save serializes the dataset back to the data file, creating any missing
// parent directory first.
func (s *DatasetStore) Save(ds *models.Dataset) error {
	dir := filepath.Dir(s.DataFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("error marshaling dataset: %w", err)
	}

	if err := os.WriteFile(s.DataFile, data, 0644); err != nil {
		return fmt.Errorf("error writing dataset file: %w", err)
	}

	s.logger.WithField(logging.FieldFile, s.DataFile).Debug("Saved dataset")
	return nil
}

// rulesFileFormat mirrors the on-disk shape of the rule table. A YAML
// sequence keeps the rule order, which decides which category wins when
// several rules match.
type rulesFileFormat struct {
	Categories []classify.Rule `yaml:"categories"`
}

// LoadRules reads the ordered category rule table. A missing rules file
// yields an empty table, which classifies every transaction as
// uncategorized.
func (s *DatasetStore) LoadRules() ([]classify.Rule, error) {
	data, err := os.ReadFile(s.RulesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.RulesFile).
				Warn("Rules file not found, no categories will match")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var rf rulesFileFormat
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.RulesFile},
		logging.Field{Key: logging.FieldCount, Value: len(rf.Categories)},
	).Debug("Loaded category rules")
	return rf.Categories, nil
}

// SaveRules writes the rule table back out, preserving order.
func (s *DatasetStore) SaveRules(rules []classify.Rule) error {
	dir := filepath.Dir(s.RulesFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(rulesFileFormat{Categories: rules})
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	if err := os.WriteFile(s.RulesFile, data, 0644); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}
	return nil
}
