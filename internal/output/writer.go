// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// Writer handles line-oriented output to an io.Writer.
type Writer struct {
	mu        sync.Mutex
	output    *bufio.Writer
	count     int
	closeFunc func() error
}

// NewWriter creates a new line writer that writes to the specified output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{output: bufio.NewWriter(w)}
}

// NewWriteCloser is like NewWriter but also closes w on Close.
func NewWriteCloser(w io.WriteCloser) *Writer {
	return &Writer{
		output:    bufio.NewWriter(w),
		closeFunc: w.Close,
	}
}

// WriteLine writes a single line and flushes it to the output.
func (w *Writer) WriteLine(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.output.WriteString(line); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	if err := w.output.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	if err := w.output.Flush(); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}

	w.count++
	return nil
}

// Printf writes a formatted line.
func (w *Writer) Printf(format string, args ...any) error {
	return w.WriteLine(fmt.Sprintf(format, args...))
}

// Count returns the number of lines written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close flushes any buffered data and closes the underlying writer if it
// was opened with NewWriteCloser.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.output.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
