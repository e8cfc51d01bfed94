package models

// Reply is the hive's answer as seen by a synchronizer.
type Reply struct {
	StatusCode  int
	Body        []byte
	ContentType ContentDescriptor
	ClientID    string
}
