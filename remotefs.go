package main

import (
	"bytes"
	"io/fs"
	"path"
	"time"
)

type getFunc func(path string) ([]byte, error)

// remoteFS serves files below base by downloading them with get.
type remoteFS struct {
	base string
	get  getFunc
}

func newRemoteFS(base string, get getFunc) *remoteFS {
	return &remoteFS{base: base, get: get}
}

func (r *remoteFS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	b, err := r.get(path.Join(r.base, name))
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return b, nil
}

func (r *remoteFS) Open(name string) (fs.File, error) {
	b, err := r.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return &remoteFile{
		Reader: bytes.NewReader(b),
		name:   path.Base(name),
	}, nil
}

type remoteFile struct {
	*bytes.Reader
	name string
}

func (f *remoteFile) Stat() (fs.FileInfo, error) {
	return f, nil
}

func (f *remoteFile) Close() error {
	return nil
}

func (f *remoteFile) Name() string {
	return f.name
}

func (f *remoteFile) Mode() fs.FileMode {
	return 0444
}

func (f *remoteFile) ModTime() time.Time {
	return time.Time{}
}

func (f *remoteFile) IsDir() bool {
	return false
}

func (f *remoteFile) Sys() interface{} {
	return nil
}
