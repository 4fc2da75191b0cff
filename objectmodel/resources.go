package objectmodel

import (
	"net/url"
	"path"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// RemoteResourceInformation is one external resource a host may prefetch.
type RemoteResourceInformation struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
}

// ResourceProvider is implemented by every element that references external
// resources. Implementations only append to acc, in document order.
type ResourceProvider interface {
	GetResourceInformation(acc *[]RemoteResourceInformation)
}

// mimeTypes is keyed by lower-case extension without the dot. The table is
// fixed so inference does not depend on the host's mime database.
var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"svg":  "image/svg+xml",
	"webp": "image/webp",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"ogv":  "video/ogg",
	"mov":  "video/quicktime",
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"ogg":  "audio/ogg",
	"m4a":  "audio/mp4",
	"aac":  "audio/aac",
}

// InferMimeType guesses a mime type from the extension of rawURL's path.
// Query strings and fragments are ignored. It returns "" when the
// extension is missing or unknown.
func InferMimeType(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	ext := strings.TrimPrefix(path.Ext(p), ".")
	if ext == "" {
		return ""
	}
	return mimeTypes[strings.ToLower(ext)]
}

// UniqueResources drops repeated URLs, keeping the first occurrence and the
// original order.
func UniqueResources(in []RemoteResourceInformation) []RemoteResourceInformation {
	seen := mapset.NewThreadUnsafeSetWithSize[string](len(in))
	out := make([]RemoteResourceInformation, 0, len(in))
	for _, r := range in {
		if !seen.Add(r.URL) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ResolveResources returns a copy of refs with relative URLs resolved
// against the host's ImageBaseURL.
func ResolveResources(refs []RemoteResourceInformation, host HostConfig) []RemoteResourceInformation {
	out := make([]RemoteResourceInformation, len(refs))
	for i, r := range refs {
		r.URL = host.ResolveURL(r.URL)
		out[i] = r
	}
	return out
}

func appendResource(acc *[]RemoteResourceInformation, rawURL, mimeType string) {
	if rawURL == "" {
		return
	}
	if mimeType == "" {
		mimeType = InferMimeType(rawURL)
	}
	*acc = append(*acc, RemoteResourceInformation{URL: rawURL, MimeType: mimeType})
}
