package journal

import (
	"io"
	"log/slog"
	"sleuth/internal/engine"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Journal is an append-only audit log of evaluated query results.
// Each result is written as one JSON line. File output is rotated and compressed via lumberjack.
// Safe for concurrent use.
type Journal struct {
	closer io.Closer // nil for writer-backed journals
	logger *slog.Logger
}

// New creates a journal writing to file.
// Parameters:
// - file: path of the active journal file
// - maxSize: maximum file size in MB before rotation
// - maxBackups: maximum number of rotated files to keep
func New(file string, maxSize, maxBackups int) *Journal {
	rotator := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}
	return &Journal{
		closer: rotator,
		logger: slog.New(newJSONLHandler(rotator)),
	}
}

// NewWriter creates a journal writing to w. Close does not close w.
func NewWriter(w io.Writer) *Journal {
	return &Journal{
		logger: slog.New(newJSONLHandler(w)),
	}
}

// Record appends result to the journal.
func (j *Journal) Record(result engine.QueryResult) {
	j.logger.Info("",
		"suspect", result.Suspect,
		"crime", result.Crime,
		"guilty", result.Guilty,
		"result", result,
	)
}

// Close flushes and closes the journal file.
func (j *Journal) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}
