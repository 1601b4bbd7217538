package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flipword/api/internal/model"
)

// ReadDocument loads a topics document written by the exporter. The format
// follows the file extension. The result is not validated.
func ReadDocument(path string) (model.TopicsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.TopicsDocument{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc model.TopicsDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return model.TopicsDocument{}, fmt.Errorf("unsupported document type %q, use .json or .yaml", filepath.Ext(path))
	}
	if err != nil {
		return model.TopicsDocument{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}
