package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"shorts_studio/internal/domain"
)

// File writes each export to <dir>/<item id>.txt, replacing an earlier
// export of the same item.
type File struct {
	dir    string
	logger *slog.Logger
}

func NewFile(dir string, logger *slog.Logger) *File {
	return &File{dir: dir, logger: logger.With("component", "export.file")}
}

func (f *File) Name() string { return "file" }

func (f *File) Path(id string) string {
	return filepath.Join(f.dir, filepath.Base(id)+".txt")
}

func (f *File) Deliver(ctx context.Context, item domain.ContentItem, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	path := f.Path(item.ID)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	f.logger.Info("wrote export file", "item_id", item.ID, "path", path)
	return nil
}
