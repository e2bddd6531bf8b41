package config

import (
	"go.uber.org/zap"

	"primkit/internal/sliceset"
)

// MergePolicy decides what happens when a name exists in both stores.
type MergePolicy int

const (
	// SkipIfPresent only copies names missing from the destination.
	SkipIfPresent MergePolicy = iota
	// UnionFinal unions the value sets of non-final entries. The result is
	// final if either side is.
	UnionFinal
	// OverwriteUnlessFinal replaces destination entries that are not final.
	OverwriteUnlessFinal
)

func (p MergePolicy) String() string {
	switch p {
	case SkipIfPresent:
		return "skip"
	case UnionFinal:
		return "union"
	case OverwriteUnlessFinal:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ParseMergePolicy accepts the names printed by MergePolicy.String.
func ParseMergePolicy(s string) (MergePolicy, bool) {
	for _, p := range []MergePolicy{SkipIfPresent, UnionFinal, OverwriteUnlessFinal} {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// MergeReport lists the affected names per outcome, each sorted.
type MergeReport struct {
	Added       []string
	Overwritten []string
	Skipped     []string
	Blocked     []string
}

// Merge copies src into dst according to policy.
func Merge(dst, src *Store, policy MergePolicy) MergeReport {
	incoming := src.snapshot()

	dst.mu.Lock()
	defer dst.mu.Unlock()

	var report MergeReport
	for _, in := range incoming {
		cur, ok := dst.props[in.Name]
		if !ok {
			dst.props[in.Name] = in
			report.Added = append(report.Added, in.Name)
			continue
		}
		switch policy {
		case SkipIfPresent:
			report.Skipped = append(report.Skipped, in.Name)
		case UnionFinal:
			if cur.Final {
				dst.blocked(in, cur)
				report.Blocked = append(report.Blocked, in.Name)
				continue
			}
			added := sliceset.Difference(in.Values, cur.Values)
			final := cur.Final || in.Final
			if len(added) == 0 && final == cur.Final {
				report.Skipped = append(report.Skipped, in.Name)
				continue
			}
			cur.Values = sliceset.Union(cur.Values, added)
			cur.Final = final
			dst.props[in.Name] = cur
			report.Overwritten = append(report.Overwritten, in.Name)
			dst.logger.Debug("values unioned",
				zap.String("name", in.Name),
				zap.Strings("added", added),
				zap.Bool("final", final))
		case OverwriteUnlessFinal:
			if cur.Final {
				dst.blocked(in, cur)
				report.Blocked = append(report.Blocked, in.Name)
				continue
			}
			dst.props[in.Name] = in
			report.Overwritten = append(report.Overwritten, in.Name)
		}
	}
	dst.logger.Debug("merge finished",
		zap.Stringer("policy", policy),
		zap.Int("added", len(report.Added)),
		zap.Int("overwritten", len(report.Overwritten)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("blocked", len(report.Blocked)))
	return report
}

func (s *Store) blocked(in, cur Property) {
	s.logger.Warn("overwrite of final property blocked",
		zap.String("name", in.Name),
		zap.String("source", in.Source),
		zap.Strings("kept", cur.Values))
}
