package service

import (
	"context"

	"claimdesk/internal/storage"
)

// ObjectStore is the part of storage.Client the services depend on.
type ObjectStore interface {
	Upload(ctx context.Context, data []byte, name, contentType string, folders ...string) (*storage.Object, error)
	Resolve(ctx context.Context, ref string, d storage.Disposition, filename string) (string, error)
	Exists(ctx context.Context, ref string) (bool, error)
	Delete(ctx context.Context, ref string)
}

var _ ObjectStore = (*storage.Client)(nil)

// removeAll deletes every uploaded object on a best-effort basis, even after ctx is cancelled.
func removeAll(ctx context.Context, objects ObjectStore, objs []*storage.Object) {
	ctx = context.WithoutCancel(ctx)
	for _, o := range objs {
		if o != nil {
			objects.Delete(ctx, o.Key)
		}
	}
}

// resolveExisting signs a URL for ref after confirming the object is still present.
func resolveExisting(ctx context.Context, objects ObjectStore, ref string, d storage.Disposition, filename string) (string, error) {
	ok, err := objects.Exists(ctx, ref)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrFileMissing
	}
	return objects.Resolve(ctx, ref, d, filename)
}
