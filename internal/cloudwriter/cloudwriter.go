package cloudwriter

import (
	"fmt"
	"os"
	"path/filepath"
)

type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

// UploadDir pushes every regular file under dir to the bucket, keyed as
// prefix/<filename>. Used to mirror a generated dataset directory to
// object storage after a file-based sink finishes.
func UploadDir(factory CloudWriterFactory, bucket, prefix, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("unable to read output directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", entry.Name(), err)
		}

		w, err := factory.NewWriter(bucket, filepath.Join(prefix, entry.Name()))
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("unable to upload %s: %w", entry.Name(), err)
		}
	}
	return nil
}
