package store

import (
	"github.com/peterbourgon/diskv/v3"
)

// Disk keeps one file per key under a base directory.
type Disk struct {
	d *diskv.Diskv
}

// OpenDisk returns a file-per-key store under basePath. The directory is
// created on first write.
func OpenDisk(basePath string) *Disk {
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
		PathPerm:     0o750,
		FilePerm:     0o600,
	})}
}

// Get implements KV.
func (s *Disk) Get(key string) (string, bool, error) {
	if !s.d.Has(key) {
		return "", false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		return "", false, err
	}
	return string(val), true, nil
}

// Set implements KV.
func (s *Disk) Set(key, value string) error {
	return s.d.Write(key, []byte(value))
}

// Delete implements KV.
func (s *Disk) Delete(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}

// Close implements KV.
func (s *Disk) Close() error { return nil }
