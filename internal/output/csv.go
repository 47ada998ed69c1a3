package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/delivergen/delivergen/internal/models"
)

// CSVOutput writes one flat CSV file per entity under basePath. This is the
// primary interface consumed by the downstream ETL and reporting layers.
type CSVOutput struct {
	basePath string
}

func NewCSVOutput(basePath string) *CSVOutput {
	return &CSVOutput{basePath: basePath}
}

func (c *CSVOutput) WriteDataset(ds *models.Dataset) error {
	if err := os.MkdirAll(c.basePath, os.ModePerm); err != nil {
		return err
	}

	for _, t := range datasetTables(ds) {
		if err := c.writeTable(t); err != nil {
			return fmt.Errorf("failed to write table %s: %w", t.name, err)
		}
	}
	return nil
}

func (c *CSVOutput) writeTable(t table) error {
	file, err := os.Create(filepath.Join(c.basePath, t.name+".csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(t.headers); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func (c *CSVOutput) Close() error {
	return nil
}
