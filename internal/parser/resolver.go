package parser

const singletonDiscardThreshold = 0.3

// Resolve applies the singleton-pick-best / multi-value-dedup policy to a
// reconciled candidate set and builds the final ContactRecord.
func Resolve(cs *candidateSet) ContactRecord {
	record := ContactRecord{}

	if best := pickBest(cs.names); best != nil {
		record.FormattedName = best
		parts := SplitNameParts(best.Value)
		record.NameStructure = &Scored[NameParts]{
			Value: parts,
			Score: best.Score,
			Label: best.Label,
		}
	}

	record.Organizations = keepOne(pickBest(cs.orgs))
	record.Titles = keepOne(pickBest(cs.titles))

	sortByScoreDesc(cs.phones)
	sortByScoreDesc(cs.emails)
	sortByScoreDesc(cs.urls)
	sortByScoreDesc(cs.addresses)

	record.Phones = cs.phones
	record.Emails = cs.emails
	record.URLs = cs.urls
	record.Addresses = cs.addresses

	return record
}

// pickBest returns the highest-scoring candidate (ties broken by
// insertion order), or nil if every candidate scores below the discard
// threshold.
func pickBest(candidates []Scored[string]) *Scored[string] {
	var best *Scored[string]
	for i := range candidates {
		c := &candidates[i]
		if c.Score < singletonDiscardThreshold {
			continue
		}
		if best == nil || c.Score > best.Score {
			best = c
		}
	}
	return best
}

func keepOne(best *Scored[string]) []Scored[string] {
	if best == nil {
		return nil
	}
	return []Scored[string]{*best}
}
