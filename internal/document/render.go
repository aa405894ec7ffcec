package document

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// DefaultShopName is printed in the document header.
const DefaultShopName = "AutoPrime Oficina Pro"

type Renderer interface {
	Render(doc *ServiceOrderDocument) ([]byte, error)
	ContentType() string
	Extension() string
}

// HTMLRenderer renders the printable HTML page. Values are escaped by
// html/template.
type HTMLRenderer struct {
	tmpl     *template.Template
	shopName string
}

func NewHTMLRenderer(shopName string) (*HTMLRenderer, error) {
	if shopName == "" {
		shopName = DefaultShopName
	}
	tmpl, err := template.New("service_order.html.tmpl").Funcs(template.FuncMap{
		"money":   FormatBRL,
		"date":    FormatDate,
		"upper":   Upper,
		"shortID": ShortID,
	}).ParseFS(templatesFS, "templates/service_order.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse document template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl, shopName: shopName}, nil
}

type htmlView struct {
	*ServiceOrderDocument
	ShopName string
}

func (r *HTMLRenderer) Render(doc *ServiceOrderDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, htmlView{ServiceOrderDocument: doc, ShopName: r.shopName}); err != nil {
		return nil, fmt.Errorf("failed to render order %s: %w", doc.OrderID, err)
	}
	return buf.Bytes(), nil
}

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }
func (r *HTMLRenderer) Extension() string   { return ".html" }
