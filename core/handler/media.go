package handler

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"appserve/core/logger"
	"appserve/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	defaultMediaPrefix = "/media"
	bucketCheckTimeout = 10 * time.Second
)

// MediaPrefix returns the URL path the media layer is mounted on. A full
// URL contributes only its path. The result has no trailing slash.
func MediaPrefix(adminMediaPrefix string) string {
	prefix := adminMediaPrefix
	if u, err := url.Parse(adminMediaPrefix); err == nil && u.Host != "" {
		prefix = u.Path
	}
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		return defaultMediaPrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}

func mountMedia(app *fiber.App, opts Options, l *zap.Logger, mediaPath string) error {
	prefix := MediaPrefix(opts.Settings.AdminMediaPrefix)

	if storage.IsURL(mediaPath) {
		loc, err := storage.ParseLocation(mediaPath, opts.Bucket)
		if err != nil {
			return err
		}
		if opts.Storage == nil {
			return fmt.Errorf("media path %s needs a storage client", mediaPath)
		}

		ctx, cancel := context.WithTimeout(context.Background(), bucketCheckTimeout)
		defer cancel()
		exists, err := opts.Storage.BucketExists(ctx, loc.Bucket)
		if err != nil {
			return fmt.Errorf("check media bucket %s: %w", loc.Bucket, err)
		}
		if !exists {
			return fmt.Errorf("media bucket %s does not exist", loc.Bucket)
		}

		app.Get(prefix+"/*", objectHandler(opts.Storage, loc, l))
		l.Info("Serving media from storage",
			zap.String("prefix", prefix),
			zap.String("bucket", loc.Bucket),
			zap.String("key_prefix", loc.Prefix))
		return nil
	}

	info, err := os.Stat(mediaPath)
	if err != nil {
		return fmt.Errorf("media path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("media path %s is not a directory", mediaPath)
	}

	app.Static(prefix, mediaPath)
	l.Info("Serving media from directory",
		zap.String("prefix", prefix),
		zap.String("path", mediaPath))
	return nil
}

func objectHandler(client storage.Client, loc storage.Location, logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("*")
		if name == "" {
			return c.SendStatus(fiber.StatusNotFound)
		}
		key := loc.Key(name)
		l := logger.WithRayID(logg, c)

		info, err := client.StatObject(c.Context(), loc.Bucket, key, minio.StatObjectOptions{})
		if err != nil {
			if storage.IsNotFound(err) {
				return c.SendStatus(fiber.StatusNotFound)
			}
			l.Error("Media stat failed", zap.String("key", key), zap.Error(err))
			return c.SendStatus(fiber.StatusBadGateway)
		}

		obj, err := client.GetObject(c.Context(), loc.Bucket, key, minio.GetObjectOptions{})
		if err != nil {
			l.Error("Media download failed", zap.String("key", key), zap.Error(err))
			return c.SendStatus(fiber.StatusBadGateway)
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, `"`+info.ETag+`"`)
		}
		return c.SendStream(obj, int(info.Size))
	}
}
