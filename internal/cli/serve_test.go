package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/horiring/d3Network/pkg/tree"
)

func TestPreviewDocuments(t *testing.T) {
	chdir(t, t.TempDir())

	root := tree.New("Canada",
		tree.New("PEI", tree.New("Charlottetown")),
		tree.New("NS", tree.New("Halifax"), tree.New("Sydney")),
	)

	page, fragment, err := previewDocuments(root, &serveOpts{})
	if err != nil {
		t.Fatalf("previewDocuments() error = %v", err)
	}

	if !strings.HasPrefix(string(page), "<!DOCTYPE html>") {
		t.Error("page should be a standalone document")
	}
	if strings.Contains(string(fragment), "<!DOCTYPE html>") {
		t.Error("fragment should not carry a page shell")
	}
	for name, doc := range map[string][]byte{"page": page, "fragment": fragment} {
		if !strings.Contains(string(doc), "Charlottetown") {
			t.Errorf("%s should embed the tree data", name)
		}
	}
}

func TestPreviewDocumentsZoom(t *testing.T) {
	chdir(t, t.TempDir())

	root := tree.New("root", tree.New("leaf"))

	page, _, err := previewDocuments(root, &serveOpts{zoom: true})
	if err != nil {
		t.Fatalf("previewDocuments() error = %v", err)
	}
	if !strings.Contains(string(page), "d3.behavior.zoom") {
		t.Error("zoom preview should wire zoom behaviour")
	}
}

func TestServeRouter(t *testing.T) {
	page := []byte("<!DOCTYPE html>\n<body>page</body>\n")
	fragment := []byte("<style></style>\nfragment")
	router := newServeRouter(context.Background(), page, fragment)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
		wantType   string
	}{
		{"page", "/", http.StatusOK, string(page), "text/html; charset=utf-8"},
		{"fragment", "/fragment", http.StatusOK, string(fragment), "text/html; charset=utf-8"},
		{"health", "/healthz", http.StatusOK, "ok", ""},
		{"unknown", "/nope", http.StatusNotFound, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if tt.wantType != "" {
				if got := rec.Header().Get("Content-Type"); got != tt.wantType {
					t.Errorf("Content-Type = %q, want %q", got, tt.wantType)
				}
			}
		})
	}
}
