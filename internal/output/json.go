package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/delivergen/delivergen/internal/models"
)

// JSONOutput writes one newline-delimited JSON file per entity.
type JSONOutput struct {
	basePath string
}

func NewJSONOutput(basePath string) *JSONOutput {
	return &JSONOutput{basePath: basePath}
}

func (j *JSONOutput) WriteDataset(ds *models.Dataset) error {
	if err := os.MkdirAll(j.basePath, os.ModePerm); err != nil {
		return err
	}

	for _, name := range TableNames {
		if err := j.writeTable(name, records(ds, name)); err != nil {
			return fmt.Errorf("failed to write table %s: %w", name, err)
		}
	}
	return nil
}

func (j *JSONOutput) writeTable(name string, rows []any) error {
	file, err := os.Create(filepath.Join(j.basePath, name+".json"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (j *JSONOutput) Close() error {
	return nil
}
