package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
scenarios_test.go exercises the full conformant/non-conformant vector table
of spec §8's "concrete scenarios", plus their natural siblings, as one
table-driven suite asserted with testify (grounded on opal-lang-opal's
cli/display_test.go and Tangerg-lynx's table-driven suites -- see
SPEC_FULL.md §9).
*/

func TestCheckHeader_scenarios(t *testing.T) {
	cases := []struct {
		name       string
		header     string
		value      string
		conformant bool
		wantSubstr string
	}{
		{
			name:       "MaxRTT conformant",
			header:     "SAND-MaxRTT",
			value:      "maxRTT=500",
			conformant: true,
		},
		{
			name:       "MaxRTT wrong type",
			header:     "SAND-MaxRTT",
			value:      "maxRTT=ab",
			wantSubstr: "Wrong or missing INT specification",
		},
		{
			name:       "AbsoluteDeadline conformant",
			header:     "SAND-AbsoluteDeadline",
			value:      "deadline=20160601T120000Z",
			conformant: true,
		},
		{
			name:       "AbsoluteDeadline extended ISO form rejected",
			header:     "SAND-AbsoluteDeadline",
			value:      "deadline=2016-06-01T12:00:00Z",
			wantSubstr: "Wrong or missing DATETIME specification",
		},
		{
			name:       "AnticipatedRequests conformant",
			header:     "SAND-AnticipatedRequests",
			value:      `[sourceUrl="http://x/y",targetTime=20160601T120000Z]`,
			conformant: true,
		},
		{
			name:       "AnticipatedRequests missing mandatory targetTime",
			header:     "SAND-AnticipatedRequests",
			value:      `[sourceUrl="http://x/y"]`,
			wantSubstr: "Mandatory sand-attribute 'targetTime' is missing",
		},
		{
			name:       "ClientCapabilities includes self code",
			header:     "SAND-ClientCapabilities",
			value:      "supportedMessage=[12]",
			conformant: true,
		},
		{
			name:       "ClientCapabilities reserved code 0",
			header:     "SAND-ClientCapabilities",
			value:      "supportedMessage=[0,12]",
			wantSubstr: "reserved code 0",
		},
		{
			name:       "ClientCapabilities missing self code",
			header:     "SAND-ClientCapabilities",
			value:      "supportedMessage=[1,2]",
			wantSubstr: "must include code 12",
		},
		{
			name:       "BwInformation conformant single attribute",
			header:     "SAND-BwInformation",
			value:      "minBandwidth=1000",
			conformant: true,
		},
		{
			name:       "BwInformation inconsistent bounds",
			header:     "SAND-BwInformation",
			value:      "minBandwidth=5000,maxBandwidth=1000",
			wantSubstr: "maxBandwidth should be greater or equal",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := CheckHeader(tc.header, tc.value)
			if tc.conformant {
				assert.Empty(t, errs, "expected no diagnostics for %q", tc.value)
				return
			}
			assert.NotEmpty(t, errs, "expected at least one diagnostic for %q", tc.value)
			if tc.wantSubstr != "" {
				found := false
				for _, e := range errs {
					if stridx(e, tc.wantSubstr) >= 0 {
						found = true
						break
					}
				}
				assert.True(t, found, "want a diagnostic containing %q, got %v", tc.wantSubstr, errs)
			}
		})
	}
}

func TestCheckHeaders_scenarioDeliveredAlternativeVaryMismatch(t *testing.T) {
	headers := []Header{
		{Name: "SAND-DeliveredAlternative", Value: `contentLocation="http://a/b"`},
		{Name: "Warning", Value: "214 Transformation Applied"},
		{Name: "Content-Location", Value: "http://a/b"},
		{Name: "Vary", Value: "accept-encoding"},
	}
	reports := CheckHeaders(headers)

	assert.Len(t, reports, 1)
	assert.NotEmpty(t, reports[0].Errors)

	found := false
	for _, e := range reports[0].Errors {
		if stridx(e, "does not permit sand-acceptedalternatives") >= 0 {
			found = true
		}
	}
	assert.True(t, found, "want a Vary-mismatch diagnostic, got %v", reports[0].Errors)
}

func TestCheckHeader_whitespaceInvariant(t *testing.T) {
	const v = `maxRTT=500`
	assert.Equal(t, CheckHeader("SAND-MaxRTT", v), CheckHeader("SAND-MaxRTT", "  "+v+"\t"))
}

func TestCheckHeader_idempotent(t *testing.T) {
	first := CheckHeader("SAND-AnticipatedRequests", `[sourceUrl="http://x/y"]`)
	second := CheckHeader("SAND-AnticipatedRequests", `[sourceUrl="http://x/y"]`)
	assert.Equal(t, first, second)
}
