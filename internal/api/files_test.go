package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omdehgostar/portal/internal/model"
)

func TestUploadMultipart(t *testing.T) {
	b := newBackend(t)

	b.mux.HandleFunc("POST /files", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var metas []model.FileMeta
		for i := 0; ; i++ {
			headers := r.MultipartForm.File[fmt.Sprintf("files[%d]", i)]
			if len(headers) == 0 {
				break
			}
			metas = append(metas, model.FileMeta{
				ID:        fmt.Sprintf("f-%d", i),
				URL:       "/files/f-" + headers[0].Filename,
				Thumbnail: "/thumbs/f-" + headers[0].Filename,
			})
		}
		json.NewEncoder(w).Encode(metas)
	})

	h := newHarness(t, b, Config{FileBaseURL: "https://files.example.ir/"})
	require.NoError(t, h.store.SetTokens("valid-token", "good-refresh"))

	files := []File{
		{Name: "cheque-front.jpg", Content: []byte("front")},
		{Name: "cheque-back.jpg", Content: []byte("back")},
	}
	metas, err := h.client.Files.Upload(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	require.Equal(t, "f-0", metas[0].ID)
	require.Equal(t, "f-1", metas[1].ID)

	require.Equal(t, "https://files.example.ir/f-0", h.client.Files.URL("f-0"))
}

func TestUploadReplaysAfterRefresh(t *testing.T) {
	b := newBackend(t)

	var bodies []string
	b.mux.HandleFunc("POST /files", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		file, _, err := r.FormFile("files[0]")
		require.NoError(t, err)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		// the buffered content must survive the replay intact
		bodies = append(bodies, string(content))
		json.NewEncoder(w).Encode([]model.FileMeta{{ID: "f-0"}})
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetTokens("stale-token", "good-refresh"))

	metas, err := h.client.Files.Upload(context.Background(), []File{{Name: "a.jpg", Content: []byte("x")}})
	require.NoError(t, err)
	require.Len(t, metas, 1)
	require.Equal(t, []string{"x"}, bodies)
	require.Equal(t, int32(1), b.refreshCalls.Load())
}
