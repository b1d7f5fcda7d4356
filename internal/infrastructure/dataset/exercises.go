package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-backend/internal/domain/entity"
	"github.com/oksasatya/fitness-backend/pkg/helpers"
)

// Source yields the raw exercises.json document.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	String() string
}

type FileSource struct {
	Path string
}

func (s FileSource) Read(_ context.Context) ([]byte, error) { return os.ReadFile(s.Path) }
func (s FileSource) String() string                        { return "file://" + s.Path }

type GCSSource struct {
	Client *storage.Client
	Bucket string
	Object string
}

func (s GCSSource) Read(ctx context.Context) ([]byte, error) {
	return helpers.ReadObject(ctx, s.Client, s.Bucket, s.Object)
}

func (s GCSSource) String() string { return fmt.Sprintf("gs://%s/%s", s.Bucket, s.Object) }

// LoadExercises reads the catalog once. A missing or malformed document is
// logged and produces an empty catalog; the server keeps running.
func LoadExercises(ctx context.Context, src Source, logger *logrus.Logger) []entity.Exercise {
	exercises, err := decode(ctx, src)
	if err != nil {
		if logger != nil {
			logger.WithError(err).WithField("source", src.String()).Error("error reading or parsing exercises")
		}
		return []entity.Exercise{}
	}
	if logger != nil {
		logger.WithField("source", src.String()).Infof("successfully loaded %d exercises", len(exercises))
	}
	return exercises
}

func decode(ctx context.Context, src Source) ([]entity.Exercise, error) {
	raw, err := src.Read(ctx)
	if err != nil {
		return nil, err
	}
	var exercises []entity.Exercise
	if err := json.Unmarshal(raw, &exercises); err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []entity.Exercise{}
	}
	return exercises, nil
}
