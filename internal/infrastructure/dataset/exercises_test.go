package dataset

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/fitness-backend/pkg/helpers"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "exercises.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadExercises_File(t *testing.T) {
	p := writeFile(t, `[
		{"id":"0001","name":"3/4 sit-up","bodyPart":"waist","equipment":"body weight","target":"abs","secondaryMuscles":["hip flexors"]},
		{"id":"0002","name":"45 side bend","bodyPart":"waist","equipment":"body weight","target":"abs"}
	]`)

	got := LoadExercises(context.Background(), FileSource{Path: p}, helpers.NewDiscardLogger())
	require.Len(t, got, 2)
	assert.Equal(t, "3/4 sit-up", got[0].Name)
	assert.Equal(t, []string{"hip flexors"}, got[0].SecondaryMuscles)
}

func TestLoadExercises_PassesThroughUnknownFields(t *testing.T) {
	p := writeFile(t, `[{"id":"0001","name":"3/4 sit-up","bodyPart":"waist","equipment":"body weight","target":"abs","difficulty":"beginner"}]`)

	got := LoadExercises(context.Background(), FileSource{Path: p}, helpers.NewDiscardLogger())
	require.Len(t, got, 1)

	out, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"0001","name":"3/4 sit-up","bodyPart":"waist","equipment":"body weight","target":"abs","difficulty":"beginner"}`, string(out))
}

func TestLoadExercises_MissingFileIsEmpty(t *testing.T) {
	got := LoadExercises(context.Background(), FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}, helpers.NewDiscardLogger())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadExercises_MalformedIsEmpty(t *testing.T) {
	p := writeFile(t, `{"not":"an array"`)

	got := LoadExercises(context.Background(), FileSource{Path: p}, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "file://./exercises.json", FileSource{Path: "./exercises.json"}.String())
	assert.Equal(t, "gs://bucket/data/exercises.json", GCSSource{Bucket: "bucket", Object: "data/exercises.json"}.String())
}
