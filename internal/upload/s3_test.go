package upload

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	objects map[string]string
	types   map[string]string
	fail    bool
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.fail {
		return nil, errors.New("access denied")
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	f.objects[key] = string(body)
	f.types[key] = aws.ToString(params.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func writeFiles(t *testing.T, files map[string]string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
		paths = append(paths, p)
	}
	return paths
}

func TestUploadFiles(t *testing.T) {
	fake := &fakePutter{objects: map[string]string{}, types: map[string]string{}}
	u := newUploader(fake, Config{Bucket: "datasets", Prefix: "/runs/42/"})

	files := writeFiles(t, map[string]string{
		"orders.csv":    "OrderID\n1\n",
		"manifest.json": "{}",
	})

	keys, err := u.UploadFiles(context.Background(), files)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"runs/42/orders.csv", "runs/42/manifest.json"}, keys)

	assert.Equal(t, "OrderID\n1\n", fake.objects["datasets/runs/42/orders.csv"])
	assert.Equal(t, "text/csv", fake.types["datasets/runs/42/orders.csv"])
	assert.Equal(t, "application/json", fake.types["datasets/runs/42/manifest.json"])
}

func TestKeyWithoutPrefix(t *testing.T) {
	u := newUploader(&fakePutter{}, Config{Bucket: "b"})
	assert.Equal(t, "dataset.db", u.Key("/tmp/out/dataset.db"))
}

func TestUploadFilesStopsOnError(t *testing.T) {
	fake := &fakePutter{fail: true}
	u := newUploader(fake, Config{Bucket: "datasets"})

	keys, err := u.UploadFiles(context.Background(), writeFiles(t, map[string]string{"a.csv": "x"}))
	assert.ErrorContains(t, err, "access denied")
	assert.Empty(t, keys)
}

func TestNewS3UploaderRequiresBucket(t *testing.T) {
	_, err := NewS3Uploader(context.Background(), Config{Region: "us-east-1"})
	assert.ErrorContains(t, err, "bucket")
}
