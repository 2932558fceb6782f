package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Disposition selects how a resolved URL asks the browser to treat the object.
type Disposition int

const (
	Inline Disposition = iota
	Attachment
)

// Object describes an uploaded artifact.
type Object struct {
	Key         string
	Size        int64
	ContentType string
	Name        string

	client *Client
}

// ViewURL returns a signed URL that displays the object inline.
func (o *Object) ViewURL(ctx context.Context) (string, error) {
	return o.client.Resolve(ctx, o.Key, Inline, o.Name)
}

// DownloadURL returns a signed URL that forces a download.
func (o *Object) DownloadURL(ctx context.Context) (string, error) {
	return o.client.Resolve(ctx, o.Key, Attachment, o.Name)
}

// Client is the application-facing object store. It is built once at startup
// and shared by every service.
type Client struct {
	store  Storage
	expiry time.Duration
	log    zerolog.Logger
	now    func() time.Time
	nonce  func() string
}

// NewClient wraps store. Signed URLs stay valid for expiry.
func NewClient(store Storage, expiry time.Duration, log zerolog.Logger) *Client {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &Client{
		store:  store,
		expiry: expiry,
		log:    log.With().Str("component", "storage").Logger(),
		now:    time.Now,
		nonce:  newNonce,
	}
}

func newNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

var unsafeSegment = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func cleanSegment(s string) string {
	s = unsafeSegment.ReplaceAllString(strings.TrimSpace(s), "_")
	s = strings.Trim(s, "._")
	if s == "" {
		return "_"
	}
	return s
}

// ObjectKey builds folders/.../<unix-ms>_<nonce>_<name> with every segment made
// path safe. The nonce keeps keys distinct when equal names land in the same
// millisecond.
func ObjectKey(at time.Time, nonce, name string, folders ...string) string {
	parts := make([]string, 0, len(folders)+1)
	for _, f := range folders {
		parts = append(parts, cleanSegment(f))
	}
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	parts = append(parts, fmt.Sprintf("%d_%s_%s", at.UnixMilli(), cleanSegment(nonce), cleanSegment(base)))
	return strings.Join(parts, "/")
}

// Upload stores data under a fresh key inside folders.
func (c *Client) Upload(ctx context.Context, data []byte, name, contentType string, folders ...string) (*Object, error) {
	key := ObjectKey(c.now(), c.nonce(), name, folders...)
	info, err := c.store.Put(ctx, key, bytes.NewReader(data), PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": name},
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}
	size := info.Size
	if size <= 0 {
		size = int64(len(data))
	}
	c.log.Debug().Str("event", "upload").Str("key", key).Int64("size", size).Msg("object stored")
	return &Object{Key: key, Size: size, ContentType: contentType, Name: name, client: c}, nil
}

// BaseName strips the <unix-ms>_<nonce>_ prefix Upload adds to the last key
// segment. Names without the prefix are returned as is.
func BaseName(key string) string {
	name := path.Base(key)
	if m := keyPrefix.FindStringIndex(name); m != nil && m[1] < len(name) {
		return name[m[1]:]
	}
	return name
}

var keyPrefix = regexp.MustCompile(`^\d+_(?:[0-9a-f]{8}_)?`)

// KeyOf extracts the object key from ref. ref may be a bare key or a URL that
// points into this client's bucket, either path style on the store endpoint or
// virtual-host style on a subdomain of it. ok is false for foreign URLs.
func (c *Client) KeyOf(ref string) (key string, ok bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if !isURL(ref) {
		return strings.TrimPrefix(ref, "/"), true
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	bucket := c.store.Bucket()
	if bucket == "" {
		return "", false
	}
	p := strings.TrimPrefix(u.Path, "/")
	host := strings.ToLower(u.Host)

	if strings.EqualFold(u.Scheme, "memory") {
		if host != strings.ToLower(bucket) || p == "" {
			return "", false
		}
		return p, true
	}
	endpoint := strings.ToLower(c.store.Endpoint())
	if endpoint == "" {
		return "", false
	}
	if host == strings.ToLower(bucket)+"."+endpoint {
		return p, p != ""
	}
	if host != endpoint {
		return "", false
	}
	if rest, found := strings.CutPrefix(p, bucket+"/"); found && rest != "" {
		return rest, true
	}
	return "", false
}

func isURL(ref string) bool {
	for _, scheme := range []string{"http://", "https://", "memory://"} {
		if strings.HasPrefix(strings.ToLower(ref), scheme) {
			return true
		}
	}
	return false
}

// Resolve returns a signed URL for ref. Foreign URLs are returned unchanged.
func (c *Client) Resolve(ctx context.Context, ref string, d Disposition, filename string) (string, error) {
	key, ok := c.KeyOf(ref)
	if !ok {
		if isURL(ref) {
			return ref, nil
		}
		return "", fmt.Errorf("resolve: empty reference")
	}
	return c.store.PresignGet(ctx, key, c.expiry, PresignOptions{
		Attachment: d == Attachment,
		Filename:   filename,
	})
}

// Fetch reads the whole object at ref.
func (c *Client) Fetch(ctx context.Context, ref string) ([]byte, error) {
	key, ok := c.KeyOf(ref)
	if !ok {
		return nil, fmt.Errorf("fetch %q: not an object in bucket %q", ref, c.store.Bucket())
	}
	rc, _, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return b, nil
}

// Exists reports whether ref names an object that is present.
func (c *Client) Exists(ctx context.Context, ref string) (bool, error) {
	key, ok := c.KeyOf(ref)
	if !ok {
		return false, nil
	}
	if _, err := c.store.Stat(ctx, key); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes ref on a best-effort basis. Failures are logged, never returned.
func (c *Client) Delete(ctx context.Context, ref string) {
	key, ok := c.KeyOf(ref)
	if !ok {
		c.log.Debug().Str("event", "delete").Str("ref", ref).Msg("skip reference outside bucket")
		return
	}
	if err := c.store.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		c.log.Warn().Err(err).Str("event", "delete").Str("key", key).Msg("object delete failed")
		return
	}
	c.log.Debug().Str("event", "delete").Str("key", key).Msg("object removed")
}
