package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/omdehgostar/portal/internal/model"
)

type FileService struct {
	c *Client
}

// File is one attachment to upload. Content is buffered so the request can
// be rebuilt if the first attempt hits a 401 and gets replayed.
type File struct {
	Name    string
	Content []byte
}

// ReadFile buffers a reader into a File.
func ReadFile(name string, r io.Reader) (File, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", name, err)
	}
	return File{Name: name, Content: content}, nil
}

// Upload sends all files as one multipart request and returns per-file
// metadata in input order.
func (s *FileService) Upload(ctx context.Context, files []File) ([]model.FileMeta, error) {
	var out []model.FileMeta
	build := func(req *resty.Request) {
		for i, f := range files {
			req.SetFileReader(fmt.Sprintf("files[%d]", i), f.Name, bytes.NewReader(f.Content))
		}
	}
	if err := s.c.doRequest(ctx, http.MethodPost, "/files", &out, build); err != nil {
		return nil, err
	}
	return out, nil
}

// URL resolves a file id against the file base URL.
func (s *FileService) URL(id string) string {
	return strings.TrimRight(s.c.cfg.FileBaseURL, "/") + "/" + id
}
