// Package sitemap builds the sitemap.xml document that describes the
// generated documentation tree.
package sitemap

import (
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/storyllms"
)

// xmlns is the sitemap protocol namespace required on the urlset element.
const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Format renders the sitemap for a documentation tree: the summary text
// file, the HTML index, then the text and HTML renditions of every entry
// in collection order. Every location reports a weekly change frequency;
// priorities descend from the summary (1.0) through the index (0.9) to
// entry text (0.8) and entry HTML (0.7). lastmod is now's calendar date.
func Format(cfg storyllms.Config, entries []*storyllms.Entry, now time.Time) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", xmlns)

	lastmod := now.Format("2006-01-02")
	addURL(urlset, cfg.JoinBase("/llms.txt"), lastmod, "1.0")
	addURL(urlset, cfg.JoinBase("/llms/index.html"), lastmod, "0.9")
	for _, e := range entries {
		addURL(urlset, cfg.JoinBase("/llms/"+e.ID+".txt"), lastmod, "0.8")
		addURL(urlset, cfg.JoinBase("/llms/"+e.ID+".html"), lastmod, "0.7")
	}

	doc.Indent(2)
	return doc.WriteToString()
}

func addURL(urlset *etree.Element, loc, lastmod, priority string) {
	u := urlset.CreateElement("url")
	u.CreateElement("loc").SetText(loc)
	u.CreateElement("lastmod").SetText(lastmod)
	u.CreateElement("changefreq").SetText("weekly")
	u.CreateElement("priority").SetText(priority)
}
