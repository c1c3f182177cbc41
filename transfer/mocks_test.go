package transfer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/opd-ai/smbshare/smb"
)

// mockTimeProvider provides deterministic time for testing.
type mockTimeProvider struct {
	currentTime time.Time
}

func newMockTimeProvider() *mockTimeProvider {
	return &mockTimeProvider{
		currentTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *mockTimeProvider) Now() time.Time                  { return m.currentTime }
func (m *mockTimeProvider) Since(t time.Time) time.Duration { return m.currentTime.Sub(t) }
func (m *mockTimeProvider) advance(d time.Duration)         { m.currentTime = m.currentTime.Add(d) }

// mockShare is an in-memory remote share with configurable failure points.
type mockShare struct {
	mu    sync.Mutex
	files map[string][]byte

	openErr    error
	moveErr    error
	seekErr    error
	seekSkew   int64 // added to the position Seek reports
	writeErrAt int   // fail the Nth write (1-based); 0 = never
	writes     int

	deleted []string

	// afterWrite runs outside the share lock after each successful write,
	// with the 1-based write count. Used to inject cancellation at exact
	// chunk boundaries.
	afterWrite func(n int)
}

func newMockShare() *mockShare {
	return &mockShare{files: make(map[string][]byte)}
}

func (s *mockShare) setFile(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = append([]byte(nil), data...)
}

func (s *mockShare) has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok
}

func (s *mockShare) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *mockShare) content(path string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.files[path]...)
}

// mockChannel serves a single named share and counts connects.
type mockChannel struct {
	mu         sync.Mutex
	shareName  string
	share      *mockShare
	connectErr error
	connects   int
}

func newMockChannel(shareName string) *mockChannel {
	return &mockChannel{shareName: shareName, share: newMockShare()}
}

func (c *mockChannel) connectCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connects
}

func (c *mockChannel) Connect(share string) (smb.Tree, error) {
	c.mu.Lock()
	c.connects++
	err := c.connectErr
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if share != c.shareName {
		return nil, fmt.Errorf("%w: unknown share %q", smb.ErrConnectionFailed, share)
	}
	return &mockTree{share: c.share}, nil
}

type mockTree struct {
	share *mockShare
}

func (t *mockTree) Open(path string, mode smb.AccessMode) (smb.File, error) {
	t.share.mu.Lock()
	defer t.share.mu.Unlock()

	if t.share.openErr != nil {
		return nil, t.share.openErr
	}

	switch mode {
	case smb.AccessCreate:
		t.share.files[path] = nil
	case smb.AccessWrite:
		if _, ok := t.share.files[path]; !ok {
			return nil, fmt.Errorf("%w: %s", smb.ErrNotFound, path)
		}
	}
	return &mockFile{share: t.share, path: path}, nil
}

func (t *mockTree) Stat(path string) (smb.FileInfo, error) {
	t.share.mu.Lock()
	defer t.share.mu.Unlock()

	data, ok := t.share.files[path]
	if !ok {
		return smb.FileInfo{}, fmt.Errorf("%w: %s", smb.ErrNotFound, path)
	}
	return smb.FileInfo{Size: int64(len(data))}, nil
}

func (t *mockTree) Move(oldPath, newPath string) error {
	t.share.mu.Lock()
	defer t.share.mu.Unlock()

	if t.share.moveErr != nil {
		return t.share.moveErr
	}
	data, ok := t.share.files[oldPath]
	if !ok {
		return fmt.Errorf("%w: %s", smb.ErrNotFound, oldPath)
	}
	t.share.files[newPath] = data
	delete(t.share.files, oldPath)
	return nil
}

func (t *mockTree) Delete(path string) error {
	t.share.mu.Lock()
	defer t.share.mu.Unlock()

	t.share.deleted = append(t.share.deleted, path)
	if _, ok := t.share.files[path]; !ok {
		return fmt.Errorf("%w: %s", smb.ErrNotFound, path)
	}
	delete(t.share.files, path)
	return nil
}

func (t *mockTree) Close() error { return nil }

type mockFile struct {
	share  *mockShare
	path   string
	cursor int64
}

func (f *mockFile) Seek(offset int64) (int64, error) {
	f.share.mu.Lock()
	defer f.share.mu.Unlock()

	if f.share.seekErr != nil {
		return 0, f.share.seekErr
	}
	f.cursor = offset
	return offset + f.share.seekSkew, nil
}

func (f *mockFile) Write(p []byte) (int, error) {
	f.share.mu.Lock()
	f.share.writes++
	n := f.share.writes

	if f.share.writeErrAt != 0 && n >= f.share.writeErrAt {
		f.share.mu.Unlock()
		return -1, errors.New("mock write failure")
	}

	data := f.share.files[f.path]
	end := f.cursor + int64(len(p))
	if int64(len(data)) < end {
		grown := make([]byte, end)
		copy(grown, data)
		data = grown
	}
	copy(data[f.cursor:], p)
	f.share.files[f.path] = data
	f.cursor = end

	hook := f.share.afterWrite
	f.share.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	return len(p), nil
}

func (f *mockFile) Close() error { return nil }

// recordingDelegate collects every callback for later assertions.
type recordingDelegate struct {
	mu        sync.Mutex
	progress  []int64
	expected  []int64
	completed int
	failures  []error
}

func (d *recordingDelegate) TransferProgress(_ *UploadTask, sent, expected int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.progress = append(d.progress, sent)
	d.expected = append(d.expected, expected)
}

func (d *recordingDelegate) TransferCompleted(_ *UploadTask) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.completed++
}

func (d *recordingDelegate) TransferFailed(_ *UploadTask, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failures = append(d.failures, err)
}

func (d *recordingDelegate) progressValues() []int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]int64(nil), d.progress...)
}

func (d *recordingDelegate) completedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.completed
}

func (d *recordingDelegate) failureList() []error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]error(nil), d.failures...)
}
