package parser

// Parse is the pipeline entry point: layout-normalizes text, runs every
// detector, reconciles the aggregate candidate set, and resolves it into
// the final ContactRecord. It never panics or returns an error — malformed
// or empty input simply yields a partial or empty record.
func Parse(text string) ContactRecord {
	chunks := NormalizeLayout(text)

	cs := &candidateSet{
		emails:    EmailDetector{}.Detect(chunks),
		orgs:      OrganizationDetector{}.Detect(chunks),
		titles:    TitleDetector{}.Detect(chunks),
		names:     NameDetector{}.Detect(chunks),
		phones:    PhoneDetector{}.Detect(chunks),
		addresses: AddressDetector{}.Detect(chunks),
	}
	cs.urls = append(URLDetector{}.Detect(chunks), SocialHandleDetector{}.Detect(chunks)...)

	Reconcile(cs)
	return Resolve(cs)
}

// ParseAll batch-parses independent card texts, grounded on the teacher's
// AddressParser.ParseAddresses batch entry point.
func ParseAll(texts []string) []ContactRecord {
	out := make([]ContactRecord, len(texts))
	for i, t := range texts {
		out[i] = Parse(t)
	}
	return out
}
