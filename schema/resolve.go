package schema

import (
	"fmt"

	"github.com/blockforge/mcaddon"
)

// Resolve picks the schema version for a requested format version:
//
//  1. an exact match when present;
//  2. otherwise the greatest known version at or below the request — newer
//     engines tolerate older documents, so rounding down is safe;
//  3. a request below every known version fails — rounding up would claim
//     compatibility the document never had.
//
// A zero requested version resolves to the newest known version, the
// authoring default.
func (r *Registry) Resolve(contentType string, requested mcaddon.FormatVersion) (mcaddon.FormatVersion, error) {
	es := r.entries[contentType]
	if len(es) == 0 {
		return mcaddon.FormatVersion{}, mcaddon.Issues{{
			Path:    "/format_version",
			Code:    mcaddon.CodeUnsupportedVersion,
			Message: fmt.Sprintf("no schemas known for content type %q", contentType),
			Params:  map[string]any{"content_type": contentType},
		}}
	}
	if requested.IsZero() {
		return es[len(es)-1].version, nil
	}
	// entries are ascending; walk down from the newest.
	for i := len(es) - 1; i >= 0; i-- {
		if es[i].version.Compare(requested) <= 0 {
			return es[i].version, nil
		}
	}
	floor := es[0].version
	return mcaddon.FormatVersion{}, mcaddon.Issues{{
		Path:    "/format_version",
		Code:    mcaddon.CodeUnsupportedVersion,
		Message: fmt.Sprintf("version %s is below the %s floor %s", requested, contentType, floor),
		Params: map[string]any{
			"content_type": contentType,
			"requested":    requested.String(),
			"floor":        floor.String(),
		},
	}}
}
