// Package app wires the EDGAR client to the extraction pipeline and owns
// the per-filing lifecycle: resolve, fetch, select the main document,
// extract the narrative section and the tables, and persist the two
// artifacts.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/mkenealy/secreports/internal/edgar"
	"github.com/mkenealy/secreports/internal/markup"
	"github.com/mkenealy/secreports/internal/narrative"
	"github.com/mkenealy/secreports/internal/subdoc"
	"github.com/mkenealy/secreports/internal/tables"
	"github.com/mkenealy/secreports/internal/workbook"
)

type App struct {
	cfg    Config
	client *edgar.Client
}

func New(cfg Config) *App {
	client := &edgar.Client{
		UserAgent:   cfg.UserAgent,
		MaxAttempts: cfg.MaxAttempts,
	}
	if cfg.CacheDir != "" {
		client.Cache = &edgar.FilingCache{Dir: cfg.CacheDir}
	}
	return &App{cfg: cfg, client: client}
}

// LoadCIKMap downloads the company name map once per process.
func (a *App) LoadCIKMap(ctx context.Context) (*edgar.CIKMap, error) {
	return a.client.LoadCIKMap(ctx)
}

// RunCompany resolves one company name and processes all of its matching
// filings. Ambiguous and unknown names are reported and skipped; per-filing
// failures never abort the remaining filings.
func (a *App) RunCompany(ctx context.Context, name string, cikMap *edgar.CIKMap) error {
	matches := cikMap.Lookup(name)
	switch {
	case len(matches) == 0:
		log.Warn().Str("company", name).Msg("no company matches")
		return nil
	case len(matches) > 1:
		log.Warn().Str("company", name).Int("matches", len(matches)).Msg("ambiguous company name, be more specific")
		for i, c := range matches {
			if i == 10 {
				break
			}
			log.Info().Str("candidate", c.Title).Str("cik", c.CIK).Send()
		}
		return nil
	}
	company := matches[0]
	log.Info().Str("company", company.Title).Str("cik", company.CIK).Msg("resolved company")

	filings, err := a.client.RecentFilings(ctx, company.CIK, a.cfg.Forms)
	if err != nil {
		return fmt.Errorf("list filings: %w", err)
	}
	if len(filings) == 0 {
		log.Info().Str("company", company.Title).Strs("forms", a.cfg.Forms).Msg("no matching filings")
		return nil
	}

	companyDir := filepath.Join(a.cfg.OutputDir, safeName(company.Title))
	if err := os.MkdirAll(companyDir, 0o755); err != nil {
		return fmt.Errorf("create company dir: %w", err)
	}
	log.Info().Int("filings", len(filings)).Str("dir", companyDir).Msg("processing filings")

	for _, f := range filings {
		res := a.ProcessFiling(ctx, company, f, companyDir)
		log.Info().
			Str("form", f.Form).
			Str("date", f.Date).
			Stringer("status", res.Overall).
			Stringer("narrative", res.Section).
			Stringer("tables", res.Tables).
			Int("sheets", res.TableCount).
			Msg("filing processed")
	}
	return nil
}

// ProcessFiling runs the whole pipeline for one filing. Every failure is
// contained at the smallest independent unit — one table, one artifact, one
// filing — and reported through the Result rather than an error.
func (a *App) ProcessFiling(ctx context.Context, company edgar.Company, f edgar.Filing, companyDir string) Result {
	narrativePath, workbookPath := artifactPaths(companyDir, company.Title, f.Form, f.Date)
	if fileExists(narrativePath) && fileExists(workbookPath) {
		return Result{Overall: StatusSkippedExists, Section: StatusSkippedExists, Tables: StatusSkippedExists}
	}

	blob, err := a.client.FetchFiling(ctx, company.CIK, f)
	if err != nil {
		log.Warn().Err(err).Str("accession", f.AccessionNumber).Msg("filing download failed")
		return Result{Overall: StatusFetchError, Section: StatusFetchError, Tables: StatusFetchError}
	}

	return extract(blob, f.Form, narrativePath, workbookPath)
}

// extract isolates the main document from the blob and writes both
// artifacts. It is pure apart from the two output files.
func extract(blob, form, narrativePath, workbookPath string) Result {
	body, ok := subdoc.Main(blob, form)
	if !ok {
		return Result{Overall: StatusNoDocument, Section: StatusNoDocument, Tables: StatusNoDocument}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body.Body))
	if err != nil {
		log.Warn().Err(err).Msg("main document is not parseable markup")
		return Result{Overall: StatusNoDocument, Section: StatusNoDocument, Tables: StatusNoDocument}
	}
	markup.StripNamespaced(doc.Selection)

	var res Result
	res.Section = writeNarrative(doc, narrativePath)
	res.Tables, res.TableCount = writeTables(doc, workbookPath)
	res.Overall = summarize(res.Section, res.Tables)
	return res
}

// writeNarrative persists the MD&A text when any was extracted. The file is
// written in a single call so no partial artifact is left behind.
func writeNarrative(doc *goquery.Document, path string) Status {
	text := narrative.Extract(doc)
	if text == "" {
		log.Info().Msg("no MD&A section extracted")
		return StatusNoSection
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		log.Error().Err(err).Str("path", path).Msg("write narrative artifact failed")
		return StatusWriteError
	}
	log.Debug().Str("path", path).Int("bytes", len(text)).Msg("wrote narrative artifact")
	return StatusOK
}

// writeTables persists the surviving table grids as a workbook, one sheet
// per grid. Nothing is written when no table survives.
func writeTables(doc *goquery.Document, path string) (Status, int) {
	grids := tables.Extract(doc)
	if len(grids) == 0 {
		log.Info().Msg("no valid tables extracted")
		return StatusNoTables, 0
	}
	if err := workbook.Write(path, grids); err != nil {
		log.Error().Err(err).Str("path", path).Msg("write workbook artifact failed")
		return StatusWriteError, 0
	}
	log.Debug().Str("path", path).Int("sheets", len(grids)).Msg("wrote workbook artifact")
	return StatusOK, len(grids)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
