package fleet

import (
	"github.com/fleetver-tech/fleetver/internal/domain/version"
)

// Well-known pull-request labels recognized by the classifier.
const (
	LabelBreakingChange = "breaking-change"
	LabelFeature        = "feature"
	LabelEnhancement    = "enhancement"
	LabelBugfix         = "bugfix"
)

// LabelLevel maps a (tier, label) pair to a bump level. Only tier 1 may
// derive a major bump from a label; tier 3 treats any non-empty label as a
// patch-worthy change. Labels outside the table yield LevelNone.
func LabelLevel(tier Tier, label string) version.Level {
	switch tier {
	case TierCritical:
		switch label {
		case LabelBreakingChange:
			return version.LevelMajor
		case LabelFeature, LabelEnhancement:
			return version.LevelMinor
		case LabelBugfix:
			return version.LevelPatch
		}
	case TierImportant:
		switch label {
		case LabelFeature, LabelEnhancement:
			return version.LevelMinor
		case LabelBugfix:
			return version.LevelPatch
		}
	case TierSupporting:
		if label != "" {
			return version.LevelPatch
		}
	}
	return version.LevelNone
}

// LabelDecision is the winning label of a classification pass.
type LabelDecision struct {
	Level version.Level
	Label string
}

// ClassifyLabels applies LabelLevel to every label independently and returns
// the maximum level together with the label that produced it. Ties at the
// maximum are broken deterministically: the lexicographically smallest label
// name wins, regardless of input order.
func ClassifyLabels(tier Tier, labels []string) LabelDecision {
	best := LabelDecision{Level: version.LevelNone}
	for _, label := range labels {
		level := LabelLevel(tier, label)
		if level == version.LevelNone {
			continue
		}
		if level > best.Level || (level == best.Level && label < best.Label) {
			best = LabelDecision{Level: level, Label: label}
		}
	}
	return best
}
