package domain

import (
	"fmt"
	"strings"
)

const schemeSeparator = "://"

// ImageRef addresses one object in a blob store as scheme://bucket/key.
type ImageRef struct {
	Scheme string
	Bucket string
	Key    string
}

// String returns the canonical scheme://bucket/key form.
func (r ImageRef) String() string {
	return r.Scheme + schemeSeparator + r.Bucket + "/" + r.Key
}

// ParseImageRef parses raw as "scheme://bucket/key" or "bucket/key".
// A reference without a scheme gets defaultScheme. A bare key (no slash) is
// accepted only when defaultBucket is set.
func ParseImageRef(raw, defaultScheme, defaultBucket string) (ImageRef, error) {
	if strings.TrimSpace(raw) != raw || raw == "" {
		return ImageRef{}, fmt.Errorf("image reference %q is empty or padded", raw)
	}

	ref := ImageRef{Scheme: defaultScheme}
	rest := raw
	if i := strings.Index(raw, schemeSeparator); i >= 0 {
		ref.Scheme = raw[:i]
		rest = raw[i+len(schemeSeparator):]
		if ref.Scheme == "" {
			return ImageRef{}, fmt.Errorf("image reference %q has an empty scheme", raw)
		}
	}

	bucket, key, found := strings.Cut(rest, "/")
	switch {
	case found:
		ref.Bucket, ref.Key = bucket, key
	case ref.Scheme == defaultScheme && defaultBucket != "" && !strings.Contains(raw, schemeSeparator):
		ref.Bucket, ref.Key = defaultBucket, rest
	default:
		return ImageRef{}, fmt.Errorf("image reference %q is not of the form bucket/key", raw)
	}

	if ref.Bucket == "" || ref.Key == "" {
		return ImageRef{}, fmt.Errorf("image reference %q has an empty bucket or key", raw)
	}
	return ref, nil
}
