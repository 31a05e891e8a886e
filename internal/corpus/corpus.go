// Package corpus defines documents, author grouping, and calendar-week
// bucketing for the comparison pipelines.
package corpus

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorEmptyCorpus is returned when an operation needs at least one document.
var ErrorEmptyCorpus = errors.New("corpus contains no documents")

// ErrorLabelParse is returned when a combined group label cannot be split
// back into its author and week parts.
var ErrorLabelParse = errors.New("group label does not match author|YYYY-MM-DD")

// labelSeparator joins author and week in a rendered group label. Kept only
// for interop with labels produced by older exports; new code carries
// GroupKey values instead of re-parsing strings.
const labelSeparator = "|"

const labelDateLayout = "2006-01-02"

// Document is one unit of the corpus: who said it, what was said, and when.
// Documents are immutable once loaded.
type Document struct {
	Author    string
	Text      string
	Timestamp time.Time
	Language  string
}

// GroupKey identifies a document group. Week is the zero time when grouping
// by author only; otherwise it is the Monday (or configured week start)
// beginning the document's calendar week.
type GroupKey struct {
	Author string
	Week   time.Time
}

// Label renders the key for display and chart axes. Author-only keys render
// as the bare author name.
func (k GroupKey) Label() string {
	if k.Week.IsZero() {
		return k.Author
	}
	return k.Author + labelSeparator + k.Week.Format(labelDateLayout)
}

// ParseGroupLabel recovers a GroupKey from a rendered label. The date part
// must be a fixed-width ISO date anchored at the end of the string; anything
// else fails with ErrorLabelParse rather than misparsing silently.
func ParseGroupLabel(label string) (GroupKey, error) {
	idx := strings.LastIndex(label, labelSeparator)
	if idx < 0 {
		if label == "" {
			return GroupKey{}, fmt.Errorf("empty label: %w", ErrorLabelParse)
		}
		return GroupKey{Author: label}, nil
	}

	author, datePart := label[:idx], label[idx+1:]
	if author == "" {
		return GroupKey{}, fmt.Errorf("label %q has no author part: %w", label, ErrorLabelParse)
	}
	if len(datePart) != len(labelDateLayout) {
		return GroupKey{}, fmt.Errorf("label %q has no fixed-width date suffix: %w", label, ErrorLabelParse)
	}
	week, err := time.Parse(labelDateLayout, datePart)
	if err != nil {
		return GroupKey{}, fmt.Errorf("label %q: %w", label, ErrorLabelParse)
	}
	return GroupKey{Author: author, Week: week}, nil
}

// Group is a set of documents sharing a key, with their texts joined for
// feature-matrix construction.
type Group struct {
	Key       GroupKey
	Documents []Document
}

// Text returns the concatenated document texts for the group.
func (g Group) Text() string {
	parts := make([]string, len(g.Documents))
	for i, d := range g.Documents {
		parts[i] = d.Text
	}
	return strings.Join(parts, " ")
}

// Corpus is an immutable collection of documents.
type Corpus struct {
	docs []Document
}

// New builds a corpus from documents.
func New(docs []Document) Corpus {
	return Corpus{docs}
}

// Len reports the number of documents.
func (c Corpus) Len() int {
	return len(c.docs)
}

// Documents returns the underlying document slice. Callers must not mutate it.
func (c Corpus) Documents() []Document {
	return c.docs
}

// GroupByAuthor folds the corpus into one group per author, sorted by author
// name so downstream matrices have a stable axis order.
func (c Corpus) GroupByAuthor() ([]Group, error) {
	return c.groupBy(func(d Document) GroupKey {
		return GroupKey{Author: d.Author}
	})
}

// GroupByAuthorWeek folds the corpus into one group per (author, week),
// flooring each timestamp to the start of its calendar week.
func (c Corpus) GroupByAuthorWeek(weekStart time.Weekday) ([]Group, error) {
	return c.groupBy(func(d Document) GroupKey {
		return GroupKey{Author: d.Author, Week: FloorToWeek(d.Timestamp, weekStart)}
	})
}

func (c Corpus) groupBy(key func(Document) GroupKey) ([]Group, error) {
	if len(c.docs) == 0 {
		return nil, ErrorEmptyCorpus
	}

	byKey := make(map[GroupKey][]Document)
	for _, d := range c.docs {
		k := key(d)
		byKey[k] = append(byKey[k], d)
	}

	groups := make([]Group, 0, len(byKey))
	for k, docs := range byKey {
		groups = append(groups, Group{Key: k, Documents: docs})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Key.Author != groups[j].Key.Author {
			return groups[i].Key.Author < groups[j].Key.Author
		}
		return groups[i].Key.Week.Before(groups[j].Key.Week)
	})
	return groups, nil
}
