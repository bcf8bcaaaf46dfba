package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	sink io.Writer = os.Stdout
)

// SetOutput redirects log output and returns a function restoring the
// previous sink. Intended for tests.
func SetOutput(w io.Writer) func() {
	mu.Lock()
	prev := sink
	sink = w
	mu.Unlock()
	return func() {
		mu.Lock()
		sink = prev
		mu.Unlock()
	}
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write("info", msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write("warn", msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write("error", msg, fields)
}

func write(level, msg string, fields map[string]any) {
	entry := make(map[string]any, len(fields)+3)
	entry["ts"] = time.Now().UTC().Format(time.RFC3339)
	entry["level"] = level
	entry["msg"] = msg
	for k, v := range fields {
		entry[k] = v
	}

	mu.Lock()
	defer mu.Unlock()
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(sink, `{"ts":"%s","level":"error","msg":"logger marshal failed","err":%q}`+"\n", time.Now().UTC().Format(time.RFC3339), err.Error())
		return
	}
	fmt.Fprintln(sink, string(data))
}
