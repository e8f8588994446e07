package edgar

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FilingCache stores raw full-text submissions on disk, one file per
// accession number. Archived filings are immutable, so entries never expire
// and no revalidation metadata is kept.
type FilingCache struct {
	Dir string
}

func (c *FilingCache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	return os.MkdirAll(c.Dir, 0o755)
}

// path maps an accession number to its cache file. Accession numbers are
// digits and dashes, already safe as filenames; anything else is rejected
// by returning an empty path.
func (c *FilingCache) path(accession string) string {
	if accession == "" || strings.ContainsAny(accession, "/\\") {
		return ""
	}
	return filepath.Join(c.Dir, accession+".txt")
}

// Load returns the cached submission body, or an error on a miss.
func (c *FilingCache) Load(accession string) ([]byte, error) {
	if err := c.ensureDir(); err != nil {
		return nil, err
	}
	p := c.path(accession)
	if p == "" {
		return nil, errors.New("invalid accession number")
	}
	return os.ReadFile(p)
}

// Save stores a submission body. A rename from a temp file keeps partial
// writes from being served later.
func (c *FilingCache) Save(accession string, body []byte) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	p := c.path(accession)
	if p == "" {
		return errors.New("invalid accession number")
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}
