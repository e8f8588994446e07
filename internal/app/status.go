package app

// Status reports one outcome of processing a filing or writing one of its
// artifacts. Everything short of StatusWriteError is informational; no
// status ever halts the batch.
type Status int

const (
	StatusOK Status = iota
	// StatusSkippedExists means both artifacts were already on disk and the
	// filing was skipped before any fetch or parse work.
	StatusSkippedExists
	// StatusFetchError means the filing body could not be downloaded.
	StatusFetchError
	// StatusNoDocument means no embedded document matched the form type.
	StatusNoDocument
	// StatusNoSection means the narrative header was not found, or was
	// found with no body text.
	StatusNoSection
	// StatusNoTables means no table survived parsing and trimming.
	StatusNoTables
	// StatusWriteError means an artifact could not be persisted.
	StatusWriteError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkippedExists:
		return "skipped-exists"
	case StatusFetchError:
		return "fetch-error"
	case StatusNoDocument:
		return "skipped-no-document"
	case StatusNoSection:
		return "skipped-no-section"
	case StatusNoTables:
		return "skipped-no-tables"
	case StatusWriteError:
		return "write-error"
	default:
		return "unknown"
	}
}

// Result captures the per-filing outcome for logging. Section and Tables
// carry the per-artifact statuses; Overall summarizes the filing.
type Result struct {
	Overall Status
	Section Status
	Tables  Status
	// TableCount is the number of sheets written when Tables is StatusOK.
	TableCount int
}

// summarize derives the filing-level status from the two artifact statuses.
func summarize(section, tablesStatus Status) Status {
	if section == StatusWriteError || tablesStatus == StatusWriteError {
		return StatusWriteError
	}
	if section == StatusOK || tablesStatus == StatusOK {
		return StatusOK
	}
	return section
}
