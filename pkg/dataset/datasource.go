package dataset

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Provider struct {
	Name    string `yaml:"name"`
	Website string `yaml:"website"`
}

type Tables struct {
	Road string `yaml:"road"`
	Rail string `yaml:"rail"`
}

// DataSource describes where one dataset lives: the location registry table
// and the two per-mode distance tables. Sources are local paths or HTTP(S)
// URLs.
type DataSource struct {
	Identifier string   `yaml:"identifier"`
	Provider   Provider `yaml:"provider"`
	Registry   string   `yaml:"registry"`
	Tables     Tables   `yaml:"tables"`
}

func LoadDataSource(path string) (*DataSource, error) {
	descriptorYaml, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var datasource DataSource
	decoder := yaml.NewDecoder(bytes.NewReader(descriptorYaml))
	if err := decoder.Decode(&datasource); err != nil {
		return nil, fmt.Errorf("datasource %s: %w", path, err)
	}

	if datasource.Registry == "" || datasource.Tables.Road == "" || datasource.Tables.Rail == "" {
		return nil, fmt.Errorf("datasource %s: registry and both tables must be set", path)
	}

	return &datasource, nil
}
