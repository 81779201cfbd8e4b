package compare

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l10nlint/internal/checks"
	"l10nlint/internal/entity"
	"l10nlint/internal/parser"
)

func parseProps(t *testing.T, path, text string) *entity.Resource {
	t.Helper()
	return parser.NewPropertiesParser().Parse(text, path)
}

func propsJob(ref, loc *entity.Resource) Job {
	return Job{
		Locale:        "fr",
		Format:        "properties",
		ReferencePath: "en-US/app.properties",
		LocalizedPath: "fr/app.properties",
		Reference:     ref,
		Localized:     loc,
	}
}

func diagsByCode(diags []checks.Diagnostic, code checks.Code) []checks.Diagnostic {
	var out []checks.Diagnostic
	for _, d := range diags {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

func TestCompareMissingFile(t *testing.T) {
	ref := parseProps(t, "en-US/app.properties", "a=x\nb=y\n# comment\nc=z\n")

	res := Compare(propsJob(ref, nil))

	require.Len(t, res.Diagnostics, 3)
	for i, key := range []string{"a", "b", "c"} {
		assert.Equal(t, checks.CodeMissingFile, res.Diagnostics[i].Code)
		assert.Equal(t, key, res.Diagnostics[i].Key)
	}
	assert.Equal(t, 3, res.Summary.Total)
	assert.Equal(t, 3, res.Summary.Missing)
	assert.Equal(t, res.Summary.Total, res.Summary.Missing)
}

func TestCompareIdenticalResources(t *testing.T) {
	// Values short enough to dodge the same-as-reference warning.
	text := "a=x\nb=y\n"
	ref := parseProps(t, "en-US/app.properties", text)
	loc := parseProps(t, "fr/app.properties", text)

	res := Compare(propsJob(ref, loc))

	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, 2, res.Summary.Unchanged)
	assert.Equal(t, 0, res.Summary.Errors)
	assert.Equal(t, 0, res.Summary.Changed)
}

func TestComparePrintfMismatchScenario(t *testing.T) {
	ref := parseProps(t, "en-US/app.properties", "greeting=Hello %s\n")
	loc := parseProps(t, "fr/app.properties", "greeting=Bonjour\n")

	res := Compare(propsJob(ref, loc))

	mismatches := diagsByCode(res.Diagnostics, checks.CodePrintfMismatch)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "greeting", mismatches[0].Key)
	assert.Equal(t, checks.SevError, mismatches[0].Severity)
	assert.Equal(t, 1, res.Summary.Errors)
}

func TestCompareMissingUnchangedObsoleteScenario(t *testing.T) {
	ref := parseProps(t, "en-US/app.properties", "a=x\nb=y\n")
	loc := parseProps(t, "fr/app.properties", "b=y\nc=z\n")

	res := Compare(propsJob(ref, loc))

	missing := diagsByCode(res.Diagnostics, checks.CodeMissing)
	require.Len(t, missing, 1)
	assert.Equal(t, "a", missing[0].Key)

	obsolete := diagsByCode(res.Diagnostics, checks.CodeObsolete)
	require.Len(t, obsolete, 1)
	assert.Equal(t, "c", obsolete[0].Key)

	assert.Equal(t, 1, res.Summary.Missing)
	assert.Equal(t, 1, res.Summary.Obsolete)
	assert.Equal(t, 1, res.Summary.Unchanged)
	assert.Equal(t, 2, res.Summary.Total)
}

func TestCompareDuplicateKeyFirstWins(t *testing.T) {
	ref := parseProps(t, "en-US/app.properties", "k=ok\n")
	loc := parseProps(t, "fr/app.properties", "k=ok\nk=other value\n")

	res := Compare(propsJob(ref, loc))

	dups := diagsByCode(res.Diagnostics, checks.CodeDuplicateKey)
	require.Len(t, dups, 1)
	assert.Equal(t, "k", dups[0].Key)
	assert.Equal(t, 2, dups[0].Position.Line)
	assert.Equal(t, 1, res.Summary.Duplicates)

	// Diffing used the first occurrence, which matches the reference.
	assert.Equal(t, 1, res.Summary.Unchanged)
	assert.Equal(t, 0, res.Summary.Changed)
}

func TestCompareLocalizedJunkDoesNotBlockSiblings(t *testing.T) {
	ref := parser.NewDTDParser().Parse(
		"<!ENTITY first \"one\">\n<!ENTITY second \"two\">\n", "en-US/app.dtd")
	loc := parser.NewDTDParser().Parse(
		"<!ENTITY first \"broken>\n<!ENTITY second \"deux\">\n", "fr/app.dtd")

	job := propsJob(ref, loc)
	job.Format = "dtd"
	res := Compare(job)

	junkErrs := diagsByCode(res.Diagnostics, checks.CodeParseError)
	require.Len(t, junkErrs, 1)
	assert.Equal(t, "first", junkErrs[0].Key)
	assert.Equal(t, "malformed entity declaration", junkErrs[0].Message)
	assert.Equal(t, 1, res.Summary.Errors)

	// The sibling entry was still evaluated.
	assert.Equal(t, 1, res.Summary.Changed)
	assert.Equal(t, 2, res.Summary.Total)
}

func TestCompareReferenceNotFound(t *testing.T) {
	job := propsJob(nil, nil)
	res := Compare(job)

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, checks.CodeReferenceNotFound, res.Diagnostics[0].Code)
	assert.Empty(t, res.Diagnostics[0].Key)
	assert.Equal(t, Counts{}, res.Summary.Counts)
}

func TestCompareSuppression(t *testing.T) {
	ref := parseProps(t, "en-US/app.properties", "greeting=Hello %s\n")
	loc := parseProps(t, "fr/app.properties", "greeting=Bonjour\n")

	job := propsJob(ref, loc)
	job.Suppressed = []checks.Code{checks.CodePrintfMismatch}
	res := Compare(job)

	assert.Empty(t, diagsByCode(res.Diagnostics, checks.CodePrintfMismatch))
	// With the finding suppressed the entry counts as changed, not error.
	assert.Equal(t, 0, res.Summary.Errors)
	assert.Equal(t, 1, res.Summary.Changed)
}

func TestCompareIdempotent(t *testing.T) {
	ref := parseProps(t, "en-US/app.properties", "a=Hello %S\nb=y\njunk line\n")
	loc := parseProps(t, "fr/app.properties", "a=Bonjour\nc=z\n")

	first := Compare(propsJob(ref, loc))
	second := Compare(propsJob(ref, loc))

	assert.Equal(t, first, second)
}

func TestSummaryMonoid(t *testing.T) {
	refA := parseProps(t, "en-US/a.properties", "a=x\nb=y\n")
	locA := parseProps(t, "fr/a.properties", "a=x\n")
	refB := parseProps(t, "en-US/b.properties", "c=z\n")
	locB := parseProps(t, "fr/b.properties", "c=z\nd=w\n")

	jobA := propsJob(refA, locA)
	jobB := propsJob(refB, locB)

	split := Compare(jobA).Summary.Counts.Add(Compare(jobB).Summary.Counts)

	r := &Runner{Workers: 2}
	batch := r.Run(context.Background(), []Job{jobA, jobB})

	assert.Equal(t, split, batch.Counts)
	// Commutativity.
	assert.Equal(t, split, Compare(jobB).Summary.Counts.Add(Compare(jobA).Summary.Counts))
}

func TestRunnerObserverOrder(t *testing.T) {
	refA := parseProps(t, "en-US/a.properties", "a=x\n")
	refB := parseProps(t, "en-US/b.properties", "b=y\n")

	jobA := propsJob(refA, nil)
	jobA.LocalizedPath = "fr/a.properties"
	jobB := propsJob(refB, nil)
	jobB.LocalizedPath = "fr/b.properties"

	rec := &recordingObserver{}
	r := &Runner{Workers: 4, Observer: rec}
	total := r.Run(context.Background(), []Job{jobA, jobB})

	// Diagnostics replay in job-submission order despite the pool.
	require.Len(t, rec.diags, 2)
	assert.Equal(t, "a", rec.diags[0].Key)
	assert.Equal(t, "b", rec.diags[1].Key)
	require.Len(t, rec.files, 2)
	assert.Equal(t, "fr/a.properties", rec.files[0].File)
	assert.Equal(t, 2, total.Missing)
	require.NotNil(t, rec.total)
	assert.Equal(t, total, *rec.total)
}

func TestRunnerSkipsCancelledJobs(t *testing.T) {
	ref := parseProps(t, "en-US/a.properties", "a=x\n")
	job := propsJob(ref, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recordingObserver{}
	r := &Runner{Workers: 2, Observer: rec}
	total := r.Run(ctx, []Job{job, job})

	// Never-scheduled jobs produce no file summaries, only the final total.
	assert.Empty(t, rec.files)
	assert.Empty(t, rec.diags)
	assert.Equal(t, Counts{}, total.Counts)
	require.NotNil(t, rec.total)
}

type recordingObserver struct {
	diags []checks.Diagnostic
	files []Summary
	total *Summary
}

func (r *recordingObserver) Diagnostic(d checks.Diagnostic) { r.diags = append(r.diags, d) }
func (r *recordingObserver) FileSummary(s Summary)          { r.files = append(r.files, s) }
func (r *recordingObserver) Total(s Summary)                { r.total = &s }
