package recipe

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// YAMLSource serves recipes read once from a YAML file of the form
//
//	recipes:
//	  - id: 1
//	    title: Avocado Toast
//	    servings_base: 2
//	    ...
type YAMLSource struct {
	collection
	path string
}

type yamlFile struct {
	Recipes []domain.Recipe `yaml:"recipes"`
}

// NewYAMLSource loads and validates the dataset at path.
func NewYAMLSource(path string, log *logger.Logger) (*YAMLSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipes: %w", err)
	}

	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	src := &YAMLSource{collection: collection{log: log}, path: path}
	if err := src.load(f.Recipes); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	log.Info("loaded %d recipes from %s", len(f.Recipes), path)
	return src, nil
}
