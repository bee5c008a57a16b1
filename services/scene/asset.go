package scene

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// ErrAssetUnavailable means the hand model could not be read or is not a
// valid binary glTF file.
var ErrAssetUnavailable = errors.New("scene asset unavailable")

const (
	glbMagic      = 0x46546C67 // "glTF"
	glbVersion    = 2
	glbHeaderSize = 12
)

// Asset is a validated GLB file held in memory.
type Asset struct {
	Path    string
	Version uint32
	Data    []byte
}

// LoadAsset reads path and checks its GLB header: magic, container version
// and declared length.
func LoadAsset(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetUnavailable, err)
	}
	version, err := parseGLBHeader(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetUnavailable, path, err)
	}
	return &Asset{Path: path, Version: version, Data: data}, nil
}

func parseGLBHeader(data []byte) (uint32, error) {
	if len(data) < glbHeaderSize {
		return 0, errors.New("file shorter than GLB header")
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != glbMagic {
		return 0, fmt.Errorf("bad magic %#x", magic)
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	if version != glbVersion {
		return 0, fmt.Errorf("unsupported GLB version %d", version)
	}
	if length := binary.LittleEndian.Uint32(data[8:12]); int(length) != len(data) {
		return 0, fmt.Errorf("declared length %d, file has %d bytes", length, len(data))
	}
	return version, nil
}

// DefaultRetryAfter is how long a failed hand model load is remembered
// before the file is read again.
const DefaultRetryAfter = 30 * time.Second

// HandModel loads the hand asset on first use. A successful load is kept for
// the life of the process; a failure is retried once RetryAfter has passed,
// so a model deployed after boot is picked up without a restart.
type HandModel struct {
	RetryAfter time.Duration

	path     string
	mu       sync.Mutex
	asset    *Asset
	err      error
	failedAt time.Time
	now      func() time.Time
}

func NewHandModel(path string) *HandModel {
	return &HandModel{path: path, RetryAfter: DefaultRetryAfter, now: time.Now}
}

// Load returns the cached asset, the recent failure, or the result of a
// fresh read.
func (m *HandModel) Load() (*Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.asset != nil {
		return m.asset, nil
	}
	if m.err != nil && m.now().Sub(m.failedAt) < m.RetryAfter {
		return nil, m.err
	}
	asset, err := LoadAsset(m.path)
	if err != nil {
		m.err, m.failedAt = err, m.now()
		return nil, err
	}
	m.asset, m.err = asset, nil
	return asset, nil
}
