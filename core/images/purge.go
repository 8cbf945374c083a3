package images

import (
	"context"
	"sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// PurgeResult reports the outcome of deleting one asset reference.
type PurgeResult struct {
	// Ref is the original asset URL.
	Ref string
	// PublicID is the extracted identifier, empty when extraction failed.
	PublicID string
	// Skipped is true when the URL did not yield an identifier and no
	// deletion was attempted.
	Skipped bool
	// Err is the deletion error, if any.
	Err error
}

// Purge deletes the remote assets behind refs as an unordered concurrent
// batch. It waits for all deletions and returns one result per reference.
// Failures are logged and reported but never abort the batch; callers
// proceed with their record mutation regardless (fail-open).
func (u *Uploader) Purge(ctx context.Context, refs []string) []PurgeResult {
	results := make([]PurgeResult, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		results[i] = PurgeResult{Ref: ref}

		id, ok := PublicID(ref)
		if !ok {
			results[i].Skipped = true
			continue
		}
		results[i].PublicID = id

		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i].Err = u.removeByID(ctx, id)
		}(i, id)
	}
	wg.Wait()

	for _, res := range results {
		if res.Err != nil {
			u.logger.Warn("Asset deletion failed",
				zap.String("public_id", res.PublicID),
				zap.Error(res.Err))
		}
	}

	return results
}

// removeByID deletes every stored object matching the public identifier.
// The stored extension is not known to callers, so objects are found by
// prefix listing. An identifier with no matching objects is a no-op.
func (u *Uploader) removeByID(ctx context.Context, id string) error {
	prefix := uploadPrefix + "/" + id

	var lastErr error
	for obj := range u.client.ListObjects(ctx, u.cfg.Bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			lastErr = obj.Err
			continue
		}
		if err := u.client.RemoveObject(ctx, u.cfg.Bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
