package compare

// Counts are the aggregated counters of one or more comparisons. They form
// a monoid under field-wise addition: merging per-file counts into
// per-locale and global totals is plain Add, in any order.
type Counts struct {
	Total      int `json:"total"`
	Missing    int `json:"missing"`
	Obsolete   int `json:"obsolete"`
	Unchanged  int `json:"unchanged"`
	Changed    int `json:"changed"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
	Duplicates int `json:"duplicates"`
}

// Add returns the field-wise sum.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Total:      c.Total + o.Total,
		Missing:    c.Missing + o.Missing,
		Obsolete:   c.Obsolete + o.Obsolete,
		Unchanged:  c.Unchanged + o.Unchanged,
		Changed:    c.Changed + o.Changed,
		Errors:     c.Errors + o.Errors,
		Warnings:   c.Warnings + o.Warnings,
		Duplicates: c.Duplicates + o.Duplicates,
	}
}

// Summary is the counters of one (locale, file) comparison. Locale and File
// are empty on rolled-up totals.
type Summary struct {
	Locale string `json:"locale,omitempty"`
	File   string `json:"file,omitempty"`
	Counts
}
