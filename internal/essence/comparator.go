package essence

import (
	"bytes"
	"strings"

	"github.com/MKhiriev/go-hivemind/models"
)

// Comparison is the result of [Compare]. Difference is nil for EQUAL.
type Comparison struct {
	Outcome    models.Outcome
	Difference []byte
}

// Compare reports how a relates to b.
//
// AHEAD means a holds records b lacks; Difference lists them in a's order.
// BEHIND means b holds records a lacks; Difference lists them in b's order.
// Each record in Difference is terminated by ';'. Compare never mutates its
// arguments and returns fresh slices.
func Compare(a, b *Observed) Comparison {
	switch {
	case a.HasData() && !b.HasData():
		return Comparison{Outcome: models.OutcomeAhead, Difference: a.Bytes()}
	case !a.HasData() && b.HasData():
		return Comparison{Outcome: models.OutcomeBehind, Difference: b.Bytes()}
	case !a.HasData() && !b.HasData():
		return Comparison{Outcome: models.OutcomeEqual}
	}

	dataA, dataB := a.raw(), b.raw()
	if bytes.Equal(dataA, dataB) {
		return Comparison{Outcome: models.OutcomeEqual}
	}

	mirror, diff := partition(dataA, dataB)

	result := Comparison{Outcome: models.OutcomeBehind, Difference: diff}
	if countRecords(mirror) > countRecords(diff) {
		result = Comparison{Outcome: models.OutcomeAhead, Difference: mirror}
	}

	if len(dataA) == len(dataB) {
		result = settleSameLength(result, mirror, diff)
	}

	return result
}

// partition builds the symmetric difference of the record sets of a and b.
// mirror receives the records only a has, diff the records only b has.
func partition(a, b []byte) (mirror, diff []byte) {
	tokensA := splitRecords(a)
	inA := make(map[string]struct{}, len(tokensA))
	for _, t := range tokensA {
		inA[t] = struct{}{}
	}

	inB := make(map[string]struct{})
	onlyB := make([]string, 0)
	for _, t := range splitRecords(b) {
		if _, seen := inB[t]; seen {
			continue
		}
		inB[t] = struct{}{}
		if _, shared := inA[t]; !shared {
			onlyB = append(onlyB, t)
		}
	}

	var mirrorBuf, diffBuf bytes.Buffer
	emitted := make(map[string]struct{}, len(tokensA))
	for _, t := range tokensA {
		if _, shared := inB[t]; shared {
			continue
		}
		if _, dup := emitted[t]; dup {
			continue
		}
		emitted[t] = struct{}{}
		mirrorBuf.WriteString(t)
		mirrorBuf.WriteByte(recordSeparator)
	}
	for _, t := range onlyB {
		diffBuf.WriteString(t)
		diffBuf.WriteByte(recordSeparator)
	}

	return mirrorBuf.Bytes(), diffBuf.Bytes()
}

// settleSameLength decides between mirror and diff when both inputs have the
// same length, which happens when versions changed without records being
// added or removed. The first position where the running byte sums of diff
// and mirror diverge picks the side holding the higher versions.
func settleSameLength(current Comparison, mirror, diff []byte) Comparison {
	var sumDiff, sumMirror int
	for i := 0; i < min(len(diff), len(mirror)); i++ {
		sumDiff += int(diff[i])
		sumMirror += int(mirror[i])

		switch {
		case sumDiff > sumMirror:
			return Comparison{Outcome: models.OutcomeBehind, Difference: diff}
		case sumDiff < sumMirror:
			return Comparison{Outcome: models.OutcomeAhead, Difference: mirror}
		}
	}

	return current
}

// splitRecords splits on ';' and drops trailing empty records.
func splitRecords(data []byte) []string {
	tokens := strings.Split(string(data), string(recordSeparator))
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

func countRecords(bucket []byte) int {
	return bytes.Count(bucket, []byte{recordSeparator})
}
