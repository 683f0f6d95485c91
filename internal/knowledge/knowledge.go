// Package knowledge holds the clinical variant knowledge base: a static,
// in-memory mapping from rsid to curated clinical annotation. The base is
// built once and never mutated, so it is safe to share across requests.
package knowledge

import (
	"github.com/genome-ingest-server/internal/domain"
)

// Base is an immutable rsid -> annotation lookup.
type Base struct {
	annotations map[string]domain.ClinicalAnnotation
}

// NewBase builds a knowledge base from the built-in curated annotations.
func NewBase() *Base {
	return NewBaseFrom(builtinAnnotations)
}

// NewBaseFrom builds a knowledge base from an explicit annotation set. The
// input map is copied; callers cannot mutate the base afterwards.
func NewBaseFrom(annotations map[string]domain.ClinicalAnnotation) *Base {
	copied := make(map[string]domain.ClinicalAnnotation, len(annotations))
	for rsid, ann := range annotations {
		copied[rsid] = ann
	}
	return &Base{annotations: copied}
}

// Lookup returns the annotation for an rsid, if one exists.
func (b *Base) Lookup(rsid string) (domain.ClinicalAnnotation, bool) {
	ann, ok := b.annotations[rsid]
	return ann, ok
}

// Size returns the number of annotated rsids.
func (b *Base) Size() int {
	return len(b.annotations)
}
