package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	assetCacheControl = "public, max-age=604800, stale-while-revalidate=86400"
	devCacheControl   = "no-cache"
)

// AssetsWithCache wraps a file server rooted at dir and applies Cache-Control, Vary,
// and ETag handling. Requests are expected with the /assets prefix still attached.
// In dev mode ETags are computed per request so edited files are picked up.
func AssetsWithCache(dir string, dev bool) http.Handler {
	etags := map[string]string{}
	if !dev {
		etags = computeETags(dir)
	}
	fs := http.StripPrefix("/assets", http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Accept-Encoding")
		rel := strings.TrimPrefix(r.URL.Path, "/assets")
		et := etags[rel]
		if dev {
			w.Header().Set("Cache-Control", devCacheControl)
			et, _ = fileETag(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(rel, "/"))))
		} else {
			w.Header().Set("Cache-Control", assetCacheControl)
		}
		if et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		fs.ServeHTTP(w, r)
	})
}

func computeETags(dir string) map[string]string {
	etags := map[string]string{}
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return nil
		}
		et, err := fileETag(path)
		if err != nil {
			return nil
		}
		if rel, err := filepath.Rel(dir, path); err == nil {
			etags["/"+filepath.ToSlash(rel)] = et
		}
		return nil
	})
	return etags
}

func fileETag(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return "", err
	}
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)[:16]) + `"`, nil
}
