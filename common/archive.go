package common

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"novai/types"
)

const archiveUploadTimeout = 30 * time.Second

// Archiver writes aggregated articles to S3 as individual JSON objects under
// a date-partitioned prefix, skipping items already stored.
type Archiver struct {
	s3     *S3
	bucket string
	prefix string
}

// NewArchiverFromEnv returns an Archiver when S3_BUCKET is set, nil otherwise
// (archiving is optional). Also honors S3_REGION, S3_PROFILE, S3_PREFIX and
// S3_USE_PATH_STYLE=true.
func NewArchiverFromEnv(ctx context.Context) *Archiver {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil
	}

	client, err := NewS3(ctx, S3Config{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	})
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (archiving disabled)", err)
		return nil
	}

	prefix := strings.Trim(strings.TrimSpace(os.Getenv("S3_PREFIX")), "/")
	if prefix != "" {
		prefix += "/"
	}
	return &Archiver{s3: client, bucket: bucket, prefix: prefix}
}

// ArchiveArticles uploads each article not yet present in the bucket and
// returns how many were written. Per-item failures are logged and skipped.
func (a *Archiver) ArchiveArticles(ctx context.Context, articles []*types.Article) int {
	archived := 0
	for _, article := range articles {
		uctx, cancel := context.WithTimeout(ctx, archiveUploadTimeout)
		err := a.archiveOne(uctx, article)
		cancel()
		if err != nil {
			log.Printf("S3 archive failed for %s: %v", article.ID, err)
			continue
		}
		archived++
	}
	return archived
}

func (a *Archiver) archiveOne(ctx context.Context, article *types.Article) error {
	key := a.prefix + "articles/" + article.PublishedAt.UTC().Format("2006/01/02") + "/" + article.ID + ".json"

	exists, err := a.s3.Exists(ctx, a.bucket, key)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	payload, err := json.MarshalIndent(article, "", "  ")
	if err != nil {
		return err
	}
	return a.s3.Put(ctx, a.bucket, key, bytes.NewReader(payload), "application/json")
}
