package document

import (
	"context"
	"fmt"
)

// Exporter renders a document and stores it through a sink.
type Exporter struct {
	Renderer Renderer
	Sink     Sink
}

// FileName is the stored name of an order's document, e.g. "os-1a2b3c4d.html".
func FileName(doc *ServiceOrderDocument, r Renderer) string {
	return fmt.Sprintf("os-%s%s", ShortID(doc.OrderID), r.Extension())
}

// Export returns the location reported by the sink.
func (e Exporter) Export(ctx context.Context, doc *ServiceOrderDocument) (string, error) {
	data, err := e.Renderer.Render(doc)
	if err != nil {
		return "", err
	}
	loc, err := e.Sink.Put(ctx, FileName(doc, e.Renderer), e.Renderer.ContentType(), data)
	if err != nil {
		return "", fmt.Errorf("failed to store document: %w", err)
	}
	return loc, nil
}
