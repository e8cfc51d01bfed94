package models

import "strings"

// Media types understood by the hive.
const (
	MediaTypeDigest     = "application/hive-essence"
	MediaTypeDigestBare = "hive-essence"
	MediaTypeJSON       = "application/json"
	MediaTypeOther      = "application/ser"
)

// ContentKind classifies a submission body.
type ContentKind int

const (
	// ContentKindUnknown is a body without a usable media type.
	ContentKindUnknown ContentKind = iota
	// ContentKindDigest is a digest ("essence") of the resources a client holds.
	ContentKindDigest
	// ContentKindJSON is a JSON payload answering a fetch request.
	ContentKindJSON
	// ContentKindOther is any other payload answering a fetch request.
	ContentKindOther
)

func (k ContentKind) String() string {
	switch k {
	case ContentKindDigest:
		return "digest"
	case ContentKindJSON:
		return "json"
	case ContentKindOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsPayload reports whether k carries resource data rather than a digest.
func (k ContentKind) IsPayload() bool {
	return k == ContentKindJSON || k == ContentKindOther
}

// ContentKindFor maps a single media type to its kind, ignoring case,
// surrounding blanks and parameters. An empty media type is unknown; any
// unrecognised one is treated as an opaque payload.
func ContentKindFor(mediaType string) ContentKind {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}

	switch mt {
	case "":
		return ContentKindUnknown
	case MediaTypeDigest, MediaTypeDigestBare:
		return ContentKindDigest
	case MediaTypeJSON, "json":
		return ContentKindJSON
	default:
		return ContentKindOther
	}
}

// ContentDescriptor is the parsed content-type information of a submission.
type ContentDescriptor struct {
	// Kind is the kind of the body.
	Kind ContentKind
	// MediaType is the declared media type of a payload body. It is echoed
	// to the client the payload is eventually delivered to.
	MediaType string
	// RequestedType is the payload media type a digest sender asked for.
	RequestedType string
}

// DescribeContent parses one or more Content-Type values. Each value may hold
// several comma-separated media types. A digest media type anywhere marks the
// body as a digest and the first other media type becomes the requested
// payload type; otherwise the first media type describes the payload.
func DescribeContent(values ...string) ContentDescriptor {
	var types []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				types = append(types, part)
			}
		}
	}

	if len(types) == 0 {
		return ContentDescriptor{Kind: ContentKindUnknown}
	}

	var desc ContentDescriptor
	for _, t := range types {
		if ContentKindFor(t) == ContentKindDigest {
			desc.Kind = ContentKindDigest
			continue
		}
		if desc.RequestedType == "" {
			desc.RequestedType = t
		}
	}

	if desc.Kind == ContentKindDigest {
		return desc
	}

	return ContentDescriptor{
		Kind:      ContentKindFor(types[0]),
		MediaType: types[0],
	}
}
