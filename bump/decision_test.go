package bump

import (
	// Stdlib
	"fmt"
)

var _ = Describe("deciding the bump from a commit message", func() {

	data := []struct {
		message  string
		expected Decision
	}{
		{
			"Add new feature: cascii export",
			DecisionMinor,
		},
		{
			"FEATURE(viewer): animate frames",
			DecisionMinor,
		},
		{
			"fix crash on startup",
			DecisionPatch,
		},
		{
			"Fix typo in the exporter",
			DecisionPatch,
		},
		{
			// "feature" wins over "fix" when both keywords appear.
			"feature work including a small fix",
			DecisionMinor,
		},
		{
			"fix things while landing the feature",
			DecisionMinor,
		},
		{
			// Substring search, so "prefix" counts as "fix".
			"rename the prefix handling",
			DecisionPatch,
		},
		{
			"update README",
			DecisionNone,
		},
		{
			"",
			DecisionNone,
		},
	}

	for _, row := range data {
		row := row
		It(fmt.Sprintf("returns %v for %q", row.expected, row.message), func() {
			Expect(Decide(row.message)).To(Equal(row.expected))
		})
	}
})

var _ = Describe("Decision", func() {

	It("prints human-readable decision names", func() {
		Expect(DecisionNone.String()).To(Equal("none"))
		Expect(DecisionPatch.String()).To(Equal("patch"))
		Expect(DecisionMinor.String()).To(Equal("minor"))
	})
})
