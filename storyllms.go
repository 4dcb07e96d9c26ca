// Package storyllms generates LLM-oriented documentation from a built
// Storybook static site. It loads the site in a headless browser served
// entirely through request interception, reads the story registry,
// renders prose docs pages to markdown, and writes an llms.txt summary,
// per-entry documents and a sitemap back into the site tree.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, htmltomarkdown/, fs/).
package storyllms
