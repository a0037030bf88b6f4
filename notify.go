package errpipeline

import (
	"sync"
	"time"
)

// DefaultDedupWindow is how long a fingerprint suppresses repeat toasts.
const DefaultDedupWindow = 1500 * time.Millisecond

// defaultLogCapacity bounds the in-memory error log; newest entries win.
const defaultLogCapacity = 100

// ToastSink is the user-facing notification surface. Rendering lives
// elsewhere; the pipeline only decides what reaches it.
type ToastSink interface {
	Success(msg string)
	Info(msg string)
	Error(e *Error)
}

// ErrorLog is the in-memory observable store of recent errors. Every
// occurrence is recorded here regardless of toast deduplication.
type ErrorLog struct {
	mu       sync.RWMutex
	entries  []*Error
	capacity int
	subs     map[int]func(*Error)
	nextSub  int
}

// NewErrorLog creates a bounded log. capacity <= 0 uses the default.
func NewErrorLog(capacity int) *ErrorLog {
	if capacity <= 0 {
		capacity = defaultLogCapacity
	}
	return &ErrorLog{capacity: capacity, subs: make(map[int]func(*Error))}
}

// Record appends e, evicting the oldest entry beyond capacity, and fans out
// to subscribers.
func (l *ErrorLog) Record(e *Error) {
	l.mu.Lock()
	l.entries = append(l.entries, e)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
	subs := make([]func(*Error), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()

	for _, fn := range subs {
		fn(e)
	}
}

// Recent returns a copy of the recorded errors, oldest first.
func (l *ErrorLog) Recent() []*Error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Error, len(l.entries))
	copy(out, l.entries)
	return out
}

// Subscribe registers fn for every future Record call and returns a cancel
// function.
func (l *ErrorLog) Subscribe(fn func(*Error)) func() {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}

// Notifier raises user-facing toasts with a short time-window dedup while
// unconditionally recording every error in its log. Construct one per
// pipeline; the dedup map is guarded for concurrent call sites.
type Notifier struct {
	mu       sync.Mutex
	window   time.Duration
	lastSeen map[string]time.Time
	sink     ToastSink
	log      *ErrorLog
	now      func() time.Time
}

// NewNotifier creates a notifier over sink. window <= 0 uses the default
// 1500 ms. A nil sink drops toasts but still records errors.
func NewNotifier(sink ToastSink, window time.Duration) *Notifier {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return &Notifier{
		window:   window,
		lastSeen: make(map[string]time.Time),
		sink:     sink,
		log:      NewErrorLog(0),
		now:      time.Now,
	}
}

// Log exposes the in-memory error store for "recent errors" surfaces.
func (n *Notifier) Log() *ErrorLog { return n.log }

// Error records e unconditionally, then raises a toast unless the same
// dedup key was seen within the window. The map is swept lazily on each
// call to bound memory.
func (n *Notifier) Error(e *Error) {
	if e == nil {
		return
	}
	n.log.Record(e)

	key := e.Fingerprint
	if key == "" {
		key = string(e.Kind)
	}

	n.mu.Lock()
	now := n.now()
	for k, seen := range n.lastSeen {
		if now.Sub(seen) > n.window {
			delete(n.lastSeen, k)
		}
	}
	seen, dup := n.lastSeen[key]
	suppress := dup && now.Sub(seen) <= n.window
	if !suppress {
		n.lastSeen[key] = now
	}
	n.mu.Unlock()

	if !suppress && n.sink != nil {
		n.sink.Error(e)
	}
}

// Success is an unconditional passthrough; success toasts never dedup.
func (n *Notifier) Success(msg string) {
	if n.sink != nil {
		n.sink.Success(msg)
	}
}

// Info is an unconditional passthrough.
func (n *Notifier) Info(msg string) {
	if n.sink != nil {
		n.sink.Info(msg)
	}
}
