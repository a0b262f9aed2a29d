package repository

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bookhive/lending-service/internal/model"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	booksFile   = "books.json"
	usersFile   = "users.json"
	borrowsFile = "borrowings.json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore keeps each aggregate in one JSON file under dir. Writes go through
// a temp file and rename so a crash mid-write cannot truncate the snapshot.
type FileStore struct {
	dir string
	log *zap.Logger
}

func NewFileStore(dir string, log *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "data dir")
	}
	return &FileStore{
		dir: dir,
		log: log.Named("filestore"),
	}, nil
}

func (f *FileStore) LoadBooks(_ context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := f.read(booksFile, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (f *FileStore) SaveBooks(_ context.Context, books []model.Book) error {
	return f.write(booksFile, books)
}

func (f *FileStore) LoadUsers(_ context.Context) ([]model.User, error) {
	var users []model.User
	if err := f.read(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (f *FileStore) SaveUsers(_ context.Context, users []model.User) error {
	return f.write(usersFile, users)
}

func (f *FileStore) LoadRecords(_ context.Context) ([]model.BorrowingRecord, error) {
	var records []model.BorrowingRecord
	if err := f.read(borrowsFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (f *FileStore) SaveRecords(_ context.Context, records []model.BorrowingRecord) error {
	return f.write(borrowsFile, records)
}

// read decodes one snapshot file. A missing file is an empty collection, not
// an error: first start has nothing on disk yet.
func (f *FileStore) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read %s", name)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode %s", name)
	}
	return nil
}

func (f *FileStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode %s", name)
	}
	path := filepath.Join(f.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %s", name)
	}
	return nil
}
