package service

import (
	"github.com/MKhiriev/go-hivemind/internal/essence"
)

// fetchRequest asks a source client to upload the resources named by diff
// for one destination.
type fetchRequest struct {
	diff          *essence.Observed
	requestedType string
}

// fetchQueue holds the fetch requests addressed to one source, keyed by
// destination in first-request order. A destination has at most one entry.
type fetchQueue struct {
	order  []string
	byDest map[string]fetchRequest
}

func newFetchQueue() *fetchQueue {
	return &fetchQueue{byDest: make(map[string]fetchRequest)}
}

// put stores req for dest, releasing any request it replaces. A replaced
// request keeps its position.
func (q *fetchQueue) put(dest string, req fetchRequest) {
	if old, ok := q.byDest[dest]; ok {
		old.diff.Release()
	} else {
		q.order = append(q.order, dest)
	}
	q.byDest[dest] = req
}

func (q *fetchQueue) first() (string, fetchRequest, bool) {
	if len(q.order) == 0 {
		return "", fetchRequest{}, false
	}
	dest := q.order[0]
	return dest, q.byDest[dest], true
}

func (q *fetchQueue) destinations() []string {
	return q.order
}

func (q *fetchQueue) release() {
	for _, req := range q.byDest {
		req.diff.Release()
	}
	clear(q.byDest)
	q.order = q.order[:0]
}

// stagedPayload is resource data waiting for its destination's next
// submission.
type stagedPayload struct {
	body      *essence.Observed
	mediaType string
}

// latestDigest is the newest digest the hive knows of and the client that
// sent it.
type latestDigest struct {
	clientID string
	digest   *essence.Observed
}

func (l *latestDigest) release() {
	if l != nil {
		l.digest.Release()
	}
}

// hiveState is every piece of coordinator state. It is guarded as one unit
// by Hive.mu.
type hiveState struct {
	latest *latestDigest
	// history is every client's submissions, oldest first.
	history map[string][]*essence.Observed
	// forcedUpdate is a digest a client must adopt before anything else.
	forcedUpdate map[string]*essence.Observed
	// pendingFetch is keyed by source client.
	pendingFetch map[string]*fetchQueue
	// readyPayload is keyed by destination client.
	readyPayload map[string]stagedPayload
}

func newHiveState() hiveState {
	return hiveState{
		history:      make(map[string][]*essence.Observed),
		forcedUpdate: make(map[string]*essence.Observed),
		pendingFetch: make(map[string]*fetchQueue),
		readyPayload: make(map[string]stagedPayload),
	}
}

// promote makes a copy of digest the latest, releasing the previous one.
func (s *hiveState) promote(clientID string, digest *essence.Observed) {
	s.latest.release()
	s.latest = &latestDigest{clientID: clientID, digest: digest.Clone()}
}

// lastSubmission returns the client's most recent history entry or nil.
func (s *hiveState) lastSubmission(clientID string) *essence.Observed {
	entries := s.history[clientID]
	if len(entries) == 0 {
		return nil
	}
	return entries[len(entries)-1]
}

// trimHistory keeps the keep most recent entries of every client and
// releases the rest. It returns the number of released entries.
func (s *hiveState) trimHistory(keep int) int {
	released := 0
	for clientID, entries := range s.history {
		if len(entries) <= keep {
			continue
		}
		cut := len(entries) - keep
		for _, e := range entries[:cut] {
			e.Release()
		}
		kept := make([]*essence.Observed, keep)
		copy(kept, entries[cut:])
		s.history[clientID] = kept
		released += cut
	}
	return released
}

// reset releases every buffer and empties all maps.
func (s *hiveState) reset() {
	s.latest.release()
	s.latest = nil

	for _, entries := range s.history {
		for _, e := range entries {
			e.Release()
		}
	}
	for _, digest := range s.forcedUpdate {
		digest.Release()
	}
	for _, q := range s.pendingFetch {
		q.release()
	}
	for _, p := range s.readyPayload {
		p.body.Release()
	}

	clear(s.history)
	clear(s.forcedUpdate)
	clear(s.pendingFetch)
	clear(s.readyPayload)
}
