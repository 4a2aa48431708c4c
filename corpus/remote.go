package corpus

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// RemoteSource fetches corpus files from S3-compatible object storage.
// Corpora commonly live in a bucket under a shared prefix, one object
// per schema or data file; a source downloads them next to each other
// so OpenCorpus can read the result.
type RemoteSource struct {
	client *minio.Client
	bucket string
}

// NewRemoteSource connects to an S3-compatible endpoint.
func NewRemoteSource(endpoint, bucket, accessKey, secretKey string, useSSL bool) (*RemoteSource, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	return &RemoteSource{
		client: client,
		bucket: bucket,
	}, nil
}

// Check verifies the bucket exists and is reachable.
func (rs *RemoteSource) Check(ctx context.Context) error {
	exists, err := rs.client.BucketExists(ctx, rs.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("corpus: bucket %q does not exist", rs.bucket)
	}
	return nil
}

// List returns the object keys under prefix, in lexical order.
func (rs *RemoteSource) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for obj := range rs.client.ListObjects(ctx, rs.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// Fetch downloads one object into dir, keeping its base name. It
// returns the local path.
func (rs *RemoteSource) Fetch(ctx context.Context, key, dir string) (string, error) {
	obj, err := rs.client.GetObject(ctx, rs.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", err
	}
	defer obj.Close()

	local := filepath.Join(dir, path.Base(key))
	f, err := os.Create(local)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, obj); err != nil {
		f.Close()
		os.Remove(local)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(local)
		return "", err
	}
	return local, nil
}

// FetchCorpus downloads the schema and data files of one split into
// dir and opens a reader over the local copies. The remote prefix is
// the object-key directory the corpus files live under.
func (rs *RemoteSource) FetchCorpus(ctx context.Context, remotePrefix, dir, prefix, split string) (*Reader, error) {
	keys, err := rs.List(ctx, path.Join(remotePrefix, prefix+"-"+split+"."))
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("corpus: no objects for %s/%s under %s", prefix, split, remotePrefix)
	}

	fetched := 0
	for _, key := range keys {
		base := path.Base(key)
		if base != SchemaPath(prefix, split) && !strings.HasPrefix(base, DataPath(prefix, split, "")) {
			continue
		}
		if _, err := rs.Fetch(ctx, key, dir); err != nil {
			return nil, err
		}
		fetched++
	}
	if fetched == 0 {
		return nil, fmt.Errorf("corpus: no schema or data objects for %s/%s under %s", prefix, split, remotePrefix)
	}

	return OpenCorpus(dir, prefix, split)
}
