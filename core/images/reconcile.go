package images

import "mime/multipart"

// Reconcile computes the new authoritative image list for an entity.
//
// existing is the list currently persisted (empty on create). retained is
// the subset the caller wants to keep, in display order; it is trusted as-is
// and entries unknown to existing are kept silently. uploaded contains the
// URLs of freshly stored assets in upload order. capacity caps the final
// list length; a value <= 0 means unbounded.
//
// newSet is retained followed by uploaded, truncated to capacity. orphaned
// is every reference present in existing but absent from retained, in
// existing order with duplicates collapsed. Elements dropped by truncation
// are not reported as orphaned; they stay in the remote store unreferenced.
func Reconcile(existing, retained, uploaded []string, capacity int) (newSet, orphaned []string) {
	newSet = make([]string, 0, len(retained)+len(uploaded))
	newSet = append(newSet, retained...)
	newSet = append(newSet, uploaded...)
	if capacity > 0 && len(newSet) > capacity {
		newSet = newSet[:capacity]
	}

	keep := make(map[string]struct{}, len(retained))
	for _, ref := range retained {
		keep[ref] = struct{}{}
	}

	seen := make(map[string]struct{}, len(existing))
	for _, ref := range existing {
		if _, ok := keep[ref]; ok {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		orphaned = append(orphaned, ref)
	}

	return newSet, orphaned
}

// SplitBatch slices one flat upload batch into per-sub-item groups.
//
// Sub-items are processed in order; sub-item i consumes counts[i] files from
// the front of the remaining batch, defaulting to 1 when the declared count
// is not positive. When the batch runs out the remaining groups are empty.
func SplitBatch(counts []int, batch []*multipart.FileHeader) [][]*multipart.FileHeader {
	groups := make([][]*multipart.FileHeader, len(counts))
	for i, count := range counts {
		if count <= 0 {
			count = 1
		}
		if count > len(batch) {
			count = len(batch)
		}
		groups[i] = batch[:count]
		batch = batch[count:]
	}
	return groups
}
