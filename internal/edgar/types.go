package edgar

import (
	"sort"
	"strconv"
	"strings"
)

// Company is one resolved entry of the SEC company ticker map.
type Company struct {
	CIK   string
	Title string
}

// Filing identifies one submission to download.
type Filing struct {
	Form            string
	AccessionNumber string
	Date            string
}

// tickerRow mirrors one value of company_tickers.json, which is an object
// keyed by row index.
type tickerRow struct {
	CIK    int    `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// submissionsResponse mirrors the slice of data.sec.gov submissions JSON the
// pipeline needs. The recent filings arrive as parallel arrays indexed
// together.
type submissionsResponse struct {
	Filings struct {
		Recent struct {
			AccessionNumber []string `json:"accessionNumber"`
			FilingDate      []string `json:"filingDate"`
			Form            []string `json:"form"`
		} `json:"recent"`
	} `json:"filings"`
}

// CIKMap resolves company names to CIK numbers. It is built once and read
// only afterwards; callers pass it explicitly rather than sharing a global.
type CIKMap struct {
	byTitle map[string]Company
}

func newCIKMap(rows map[string]tickerRow) *CIKMap {
	m := &CIKMap{byTitle: make(map[string]Company, len(rows))}
	for _, r := range rows {
		m.byTitle[strings.ToUpper(r.Title)] = Company{
			CIK:   strconv.Itoa(r.CIK),
			Title: r.Title,
		}
	}
	return m
}

// Len returns the number of companies in the map.
func (m *CIKMap) Len() int { return len(m.byTitle) }

// Lookup returns every company whose title contains name,
// case-insensitively, sorted by title for stable output. An exact-one result
// is an unambiguous resolution; the caller decides how to present multiple
// candidates.
func (m *CIKMap) Lookup(name string) []Company {
	needle := strings.ToUpper(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	var matches []Company
	for title, c := range m.byTitle {
		if strings.Contains(title, needle) {
			matches = append(matches, c)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Title < matches[j].Title })
	return matches
}

// padCIK zero-pads a CIK to the ten digits the submissions endpoint expects.
func padCIK(cik string) string {
	if len(cik) >= 10 {
		return cik
	}
	return strings.Repeat("0", 10-len(cik)) + cik
}
