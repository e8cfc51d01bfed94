package essence

import (
	"bytes"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-hivemind/models"
)

const (
	idSeparator     = ','
	recordSeparator = ';'
)

// Parse validates digest and splits it into records. A record ends at ';'
// and its version follows the last ',' in it. The id is the segment just
// before that comma, so "1,2,3;" has id 2 and version 3. A trailing record
// without ';' is still returned, while records with neither id nor version
// are skipped. Empty, blank or NUL-only input yields an empty list.
//
// Decimal fields that fit into uint64 are returned as uint64, any other
// non-empty field as []byte and empty fields as nil.
func Parse(digest []byte) ([]models.Resource, error) {
	if err := Validate(digest); err != nil {
		return nil, err
	}

	trimmed := trimBlank(digest)
	resources := make([]models.Resource, 0, bytes.Count(trimmed, []byte{recordSeparator})+1)

	var id []byte
	start := 0
	emit := func(version []byte) {
		if len(id) == 0 && len(version) == 0 {
			return
		}
		resources = append(resources, models.Resource{ID: field(id), Version: field(version)})
	}

	for i, b := range trimmed {
		switch b {
		case idSeparator:
			id = trimmed[start:i]
			start = i + 1
		case recordSeparator:
			emit(trimmed[start:i])
			id = nil
			start = i + 1
		}
	}
	emit(trimmed[start:])

	return resources, nil
}

func field(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	if n, err := strconv.ParseUint(string(raw), 10, 64); err == nil {
		return n
	}
	return slices.Clone(raw)
}

// Serialize writes resources as a digest. Ids and versions may be []byte or
// any integer kind; other kinds fail with ErrUnsupportedValueKind. When any
// resource misses its id or version the whole result is empty.
func Serialize(resources []models.Resource) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range resources {
		if isAbsent(r.ID) || isAbsent(r.Version) {
			return []byte{}, nil
		}

		if err := appendValue(&buf, r.ID); err != nil {
			return nil, err
		}
		buf.WriteByte(idSeparator)
		if err := appendValue(&buf, r.Version); err != nil {
			return nil, err
		}
		buf.WriteByte(recordSeparator)
	}

	return buf.Bytes(), nil
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	b, ok := v.([]byte)
	return ok && b == nil
}

func appendValue(buf *bytes.Buffer, v any) error {
	if b, ok := v.([]byte); ok {
		buf.Write(b)
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		buf.WriteString(strconv.FormatUint(rv.Uint(), 10))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValueKind, v)
	}

	return nil
}
