// Package static раздаёт файлы из фиксированного корня.
//
// Resolver превращает URL-путь в путь на диске и не даёт выйти за корень,
// Handler отдаёт найденный файл с Content-Type по расширению.
package static

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	serr "github.com/IvanChernomyrdin/siteauth/internal/shared/errors"
)

// IndexFile — документ, который отдаётся для "/" и для каталогов.
const IndexFile = "index.html"

// contentTypes — фиксированная таблица расширение -> MIME.
var contentTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
	".json": "application/json",
}

// ContentType возвращает MIME по расширению файла, для неизвестных — application/octet-stream.
func ContentType(path string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Resolver сопоставляет URL-пути файлам внутри Root.
type Resolver struct {
	root string
}

// NewResolver делает root абсолютным и очищенным один раз, при старте.
func NewResolver(root string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("static root %q: %w", root, err)
	}
	return &Resolver{root: filepath.Clean(abs)}, nil
}

// Root возвращает абсолютный корень статики.
func (r *Resolver) Root() string {
	return r.root
}

// Candidate вычисляет путь на диске для urlPath без обращения к файловой системе.
//
// "/" превращается в <root>/index.html. Путь, который после очистки оказался
// вне root (через "..", в том числе в соседний каталог с общим префиксом
// вроде <root>-evil), даёт ErrForbidden.
func (r *Resolver) Candidate(urlPath string) (string, error) {
	if urlPath == "" || urlPath == "/" {
		urlPath = "/" + IndexFile
	}

	candidate := filepath.Join(r.root, filepath.FromSlash(urlPath))

	rel, err := filepath.Rel(r.root, candidate)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", serr.ErrForbidden
	}
	return candidate, nil
}

// Resolve находит файл для urlPath:
//   - сам candidate, если это обычный файл;
//   - иначе candidate/index.html, если он существует;
//   - иначе ErrNotFound.
func (r *Resolver) Resolve(urlPath string) (string, error) {
	candidate, err := r.Candidate(urlPath)
	if err != nil {
		return "", err
	}

	if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
		return candidate, nil
	}

	index := filepath.Join(candidate, IndexFile)
	if _, err := os.Stat(index); err == nil {
		return index, nil
	}

	return "", serr.ErrNotFound
}
