// Package etree builds the sitemap.xml shipped with each bundle.
package etree

import (
	"github.com/beevik/etree"
	"github.com/topiclab/topicviz"
)

// Ensure SitemapBuilder implements topicviz.SitemapWriter.
var _ topicviz.SitemapWriter = (*SitemapBuilder)(nil)

// SitemapBuilder writes sitemap XML documents in the sitemaps.org format.
type SitemapBuilder struct{}

// NewSitemapBuilder creates a new SitemapBuilder.
func NewSitemapBuilder() *SitemapBuilder {
	return &SitemapBuilder{}
}

// Build returns a <urlset> sitemap with one <url> entry per page, in the
// order given. Pages are bundle-relative locations like "index.html".
func (b *SitemapBuilder) Build(pages []string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	for _, page := range pages {
		url := urlset.CreateElement("url")
		url.CreateElement("loc").SetText(page)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, topicviz.Errorf(topicviz.EINTERNAL, "write sitemap: %v", err)
	}
	return out, nil
}
