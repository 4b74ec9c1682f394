package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
// Without history the altseason momentum component stays absent.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordCycle(_ *CycleRecord) error { return nil }
func (n *NoopRecorder) RecordSentiment(_ *SentimentRecord) error { return nil }
func (n *NoopRecorder) PreviousSentiment() (*SentimentRecord, error) { return nil, nil }
func (n *NoopRecorder) PreviousRisk() (int, error) { return -1, nil }
func (n *NoopRecorder) Close() error { return nil }
