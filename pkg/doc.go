// Package pkg provides the core libraries for semantic man page generation.
//
// # Overview
//
// Semantic turns structured documents into byte-exact ROFF man page source
// and markdown. The pkg directory is organized in layers, from the raw
// markup model up to the declarative manifest format:
//
//  1. [roff] - ROFF document model, renderer and escaper
//  2. [man] - man page macro layer (.TH/.SH/.TP, inline styles)
//  3. [doc] - format-independent semantic documents (sections, lists)
//  4. [manifest] - TOML page definitions
//  5. [output] - write-if-changed file output for CI freshness checks
//
// # Architecture
//
// The typical data flow through semantic:
//
//	TOML manifest
//	     ↓
//	[manifest] package (parse + validate)
//	     ↓
//	[doc] package (semantic blocks and styled fragments)
//	     ↓
//	[man] package (man macros) → [roff] package (escaping + rendering)
//	     ↓
//	name.section / name.md output
//
// # Quick Start
//
// Build a page directly against the man layer:
//
//	import (
//	    "github.com/pacak/semantic/pkg/man"
//	)
//
//	page := man.New("CORRUPT", man.General, "2026-08-01")
//	page.Section("NAME")
//	page.Paragraph(man.Normal("corrupt - modify files by randomly changing bits"))
//	page.Section("OPTIONS")
//	page.Label("", man.Literal("-n"), man.Normal(", "), man.Literal("--bits"), man.Normal(" "), man.Metavar("BITS"))
//	page.Paragraph(man.Normal("Set the number of bits to modify"))
//	fmt.Print(page.Render())
//
// Or declaratively through a manifest:
//
//	page, _ := manifest.Load("corrupt.toml")
//	src, _ := page.RenderMan()
//
// # Main Packages
//
// [roff] - The markup core. An append-only document of control lines,
// styled text spans and comments, rendered with full escaping: text can
// never inject a control line, dashes and backslashes become glyph-safe
// escapes, and rendering is pure and idempotent.
//
// [man] - Manual page conventions on top of roff: the .TH title header,
// sections, tagged paragraphs and lists, with semantic inline styles
// (Literal, Metavar, Important, Code) mapped to fonts.
//
// [doc] - Structured documents that do not care about the output format.
// One document renders both as a man page and as markdown with embedded
// HTML lists.
//
// [manifest] - Declarative TOML page definitions with minimal inline
// markup, validated with coded errors. Synthesizes NAME and SYNOPSIS from
// page metadata and option tables.
//
// [output] - Content-aware file writes. Files are only rewritten when
// their content changes, so CI can verify committed pages are current.
//
// [errors] - Structured errors with machine-readable codes shared by the
// library surface and the CLI.
//
// [buildinfo] - Version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/roff/...     # Specific package
//	go test -run Example       # Examples only
//
// [roff]: https://pkg.go.dev/github.com/pacak/semantic/pkg/roff
// [man]: https://pkg.go.dev/github.com/pacak/semantic/pkg/man
// [doc]: https://pkg.go.dev/github.com/pacak/semantic/pkg/doc
// [manifest]: https://pkg.go.dev/github.com/pacak/semantic/pkg/manifest
// [output]: https://pkg.go.dev/github.com/pacak/semantic/pkg/output
// [errors]: https://pkg.go.dev/github.com/pacak/semantic/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/pacak/semantic/pkg/buildinfo
package pkg
