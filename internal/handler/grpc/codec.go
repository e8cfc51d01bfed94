// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content subtype under which RawCodec is registered.
// Clients select it with grpc.CallContentSubtype(CodecName).
const CodecName = "hive-raw"

func init() {
	encoding.RegisterCodec(RawCodec{})
}

// RawCodec passes message bytes through untouched. Digests and payloads are
// opaque to the transport, so there is no protobuf schema to encode.
type RawCodec struct{}

func (RawCodec) Marshal(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case *[]byte:
		if b == nil {
			return nil, nil
		}
		return *b, nil
	default:
		return nil, fmt.Errorf("raw codec: cannot marshal %T", v)
	}
}

func (RawCodec) Unmarshal(data []byte, v any) error {
	b, ok := v.(*[]byte)
	if !ok {
		return fmt.Errorf("raw codec: cannot unmarshal into %T", v)
	}
	*b = append((*b)[:0], data...)
	return nil
}

func (RawCodec) Name() string {
	return CodecName
}
