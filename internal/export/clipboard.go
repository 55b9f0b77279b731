package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"

	"shorts_studio/internal/domain"
)

var ErrClipboardUnsupported = errors.New("clipboard is not available on this system")

// Clipboard copies the export text to the system clipboard.
type Clipboard struct {
	write  func(string) error
	logger *slog.Logger
}

func NewClipboard(logger *slog.Logger) *Clipboard {
	return &Clipboard{
		write:  clipboard.WriteAll,
		logger: logger.With("component", "export.clipboard"),
	}
}

func (c *Clipboard) Name() string { return "clipboard" }

func (c *Clipboard) Deliver(_ context.Context, item domain.ContentItem, text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	c.logger.Debug("copied export to clipboard", "item_id", item.ID, "bytes", len(text))
	return nil
}
