package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fakestoredw/internal/pkg/constants"
)

// Sink persists the derived tables.
type Sink interface {
	EnsureReady() error
	WriteTable(name string, header []string, records [][]string) error
}

type csvSink struct {
	dir string
}

func NewCSVSink(dir string) Sink {
	return &csvSink{dir: dir}
}

func (s *csvSink) EnsureReady() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("ensure output dir: %w",
			constants.NewCodedError(constants.CodeFilesystem, err.Error()))
	}
	return nil
}

func (s *csvSink) WriteTable(name string, header []string, records [][]string) (err error) {
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w",
			path, constants.NewCodedError(constants.CodeFilesystem, err.Error()))
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("close %s: %w",
				path, constants.NewCodedError(constants.CodeFilesystem, closeErr.Error()))
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w",
			path, constants.NewCodedError(constants.CodeFilesystem, err.Error()))
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s records: %w",
			path, constants.NewCodedError(constants.CodeFilesystem, err.Error()))
	}

	return nil
}
