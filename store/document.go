package store

import (
	"context"
	"os"
	"path/filepath"

	"food-swipe-api/models"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Document is the whole persisted catalog. It is always read and written as
// one unit.
type Document struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Orders      []models.Order      `json:"orders"`
}

// DocumentRepository loads and saves the catalog document as a whole
type DocumentRepository interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// FileRepository keeps the document in a single JSON file on disk.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read data file %s", r.path)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode data file %s", r.path)
	}
	doc.normalize()
	return &doc, nil
}

// Save replaces the file in one rename so a reader never sees half a document.
// Concurrent writers from other processes are not excluded; the last rename wins.
func (r *FileRepository) Save(ctx context.Context, doc *Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc.normalize()
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode data file")
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".database-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp data file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp data file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp data file")
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errors.Wrapf(err, "replace data file %s", r.path)
	}
	return nil
}

// normalize turns missing collections into empty ones so the API never
// answers with null where a list is expected.
func (d *Document) normalize() {
	if d.Restaurants == nil {
		d.Restaurants = []models.Restaurant{}
	}
	if d.Orders == nil {
		d.Orders = []models.Order{}
	}
	for i := range d.Restaurants {
		if d.Restaurants[i].DeliveryApps == nil {
			d.Restaurants[i].DeliveryApps = []string{}
		}
	}
	for i := range d.Orders {
		o := &d.Orders[i]
		if o.Tags == nil {
			o.Tags = []string{}
		}
		if o.DeliveryApps == nil {
			o.DeliveryApps = []string{}
		}
		if o.LikeUsers == nil {
			o.LikeUsers = []string{}
		}
		if o.Comments == nil {
			o.Comments = []models.Comment{}
		}
		if o.Likes < 0 {
			o.Likes = 0
		}
	}
}
