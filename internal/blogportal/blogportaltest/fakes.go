package blogportaltest

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	blogmail "github.com/daniilsolovey/blog-portal/internal/mail"
	"github.com/daniilsolovey/blog-portal/internal/media"
)

// Images keeps uploads in memory. It accepts the same extensions as media.Storage.
type Images struct {
	mu    sync.Mutex
	seq   int
	Files map[string]string
	// SaveErr is returned by every Save when set.
	SaveErr error
}

var _ blogportal.ImageStore = (*Images)(nil)

func NewImages() *Images {
	return &Images{Files: map[string]string{}}
}

func (i *Images) Save(_ context.Context, folder, filename string, body io.Reader) (string, error) {
	if i.SaveErr != nil {
		return "", i.SaveErr
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", fmt.Errorf("%w: %q", media.ErrUnsupportedType, ext)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.seq++
	ref := path.Join(folder, fmt.Sprintf("%d%s", i.seq, ext))
	i.Files[ref] = string(data)
	return ref, nil
}

func (i *Images) Delete(_ context.Context, ref string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.Files, ref)
	return nil
}

func (i *Images) Has(ref string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, ok := i.Files[ref]
	return ok
}

func (i *Images) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.Files)
}

// Mailer records sent messages.
type Mailer struct {
	mu   sync.Mutex
	Sent []blogmail.Message
	Err  error
}

var _ blogmail.Sender = (*Mailer)(nil)

func (m *Mailer) Send(_ context.Context, msg blogmail.Message) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, msg)
	return nil
}

func (m *Mailer) Last() (blogmail.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return blogmail.Message{}, false
	}
	return m.Sent[len(m.Sent)-1], true
}
