package logger

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

const entriesBufferSize = 1024

var errLogger = NewSource("LOG", Stderr)

// Satisfies Logger, ConcurrentLogger and ForwardingLogger interfaces.
//
// Until Start() is called entries are only forwarded, nothing is written to the file.
type FileLogger struct {
	name        string
	mut         sync.RWMutex
	logger      *log.Logger
	logFile     io.Closer
	isRunning   atomic.Bool
	forwardings []Logger
	entries     chan *LogEntry
	handler     func(*LogEntry)
	done        chan struct{}
}

func NewFileLogger(name string) *FileLogger {
	return &FileLogger{
		name:        name,
		forwardings: []Logger{},
	}
}

// Opens (or creates) '<dir>/<name>.log' and starts consuming log entries.
func (l *FileLogger) Start(dir string) error {
	if l.isRunning.Load() {
		return errors.New("logger already started")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(
		filepath.Join(dir, l.name+".log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644, // -rw-r--r--
	)
	if err != nil {
		return err
	}

	l.startWithWriter(f, f)

	return nil
}

func (l *FileLogger) startWithWriter(w io.Writer, closer io.Closer) {
	l.mut.Lock()
	defer l.mut.Unlock()

	l.logger = log.New(w, "", 0)
	l.logFile = closer
	l.handler = newLogEntryHandler(l.logger)
	l.entries = make(chan *LogEntry, entriesBufferSize)
	l.done = make(chan struct{})

	l.isRunning.Store(true)

	go l.consume(l.entries, l.done)
}

func (l *FileLogger) consume(entries <-chan *LogEntry, done chan<- struct{}) {
	for entry := range entries {
		l.handler(entry)
	}
	close(done)
}

func (l *FileLogger) Stop() error {
	l.mut.Lock()
	defer l.mut.Unlock()

	if !l.isRunning.Load() {
		return errors.New("logger isn't started, hence can't be stopped")
	}

	l.isRunning.Store(false)

	close(l.entries)
	<-l.done

	if l.logFile != nil {
		return l.logFile.Close()
	}

	return nil
}

// Creates function that encodes entry as a single JSON line and writes it.
func newLogEntryHandler(logger *log.Logger) func(*LogEntry) {
	pool := sync.Pool{
		New: func() any {
			return jsoniter.NewStream(jsoniter.ConfigFastest, nil, 1024)
		},
	}

	return func(entry *LogEntry) {
		stream := pool.Get().(*jsoniter.Stream)
		defer pool.Put(stream)

		stream.Reset(nil)
		stream.Error = nil

		stream.WriteVal(entry)
		if stream.Error != nil {
			errLogger.Error("failed to write log", stream.Error.Error(), nil)
			return
		}

		// Without this all logs will be written in single line
		stream.WriteRaw("\n")

		// NOTE: log.Logger use mutex under the hood, so it's thread safe by default
		logger.Writer().Write(stream.Buffer())
	}
}

func (l *FileLogger) log(entry *LogEntry) {
	l.mut.RLock()
	defer l.mut.RUnlock()

	if !l.isRunning.Load() {
		return
	}

	select {
	case l.entries <- entry:
	default:
		// buffer is overflowed, write synchronously
		l.handler(entry)
	}
}

func (l *FileLogger) Log(entry *LogEntry) {
	if !preprocess(entry, l.forwardings) {
		return
	}

	if entry.rawLevel >= FatalLogLevel {
		l.mut.RLock()
		if l.isRunning.Load() {
			l.handler(entry)
		}
		l.mut.RUnlock()

		handleCritical(entry)
	}

	l.log(entry)
}

func (l *FileLogger) NewForwarding(logger Logger) error {
	if logger == nil {
		return errors.New("received nil instead of logger")
	}

	if fl, ok := logger.(*FileLogger); ok && fl == l {
		return errors.New("can't create forwarding for self")
	}

	if slices.Contains(l.forwardings, logger) {
		return errors.New("this logger already has forwarding")
	}

	l.forwardings = append(l.forwardings, logger)

	return nil
}

func (l *FileLogger) RemoveForwarding(logger Logger) error {
	idx := slices.Index(l.forwardings, logger)
	if idx == -1 {
		return errors.New("forwarding to specified logger doesn't exist")
	}

	l.forwardings = slices.Delete(l.forwardings, idx, idx+1)

	return nil
}
