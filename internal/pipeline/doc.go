// Package pipeline implements the Markdown-to-page conversion stages.
//
// The stages run in a fixed order:
//   - Markdown preprocessing (line ending normalization, BOM removal)
//   - Markdown to HTML conversion via Goldmark, which also yields a
//     table-of-contents fragment built from the document headings
//   - Title and TOC extraction from that fragment (DOM traversal)
//   - TOC splicing at the <!-- TOC --> placeholder
//   - Page templating (title, stylesheets, body, footer)
//
// Orchestration lives in the root md2html package. Each stage is exposed
// behind a small interface so the converter can be tested with fakes.
package pipeline
