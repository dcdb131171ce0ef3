package httpapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"restoran/menu-svc/internal/domain"
)

const maxUploadSize = 10 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Uploader stores images under Dir and serves them at /uploads/.
type Uploader struct {
	Dir string
}

// Save writes the image and returns its public URL. Both the declared and
// the sniffed content type must be an allowed image type.
func (u Uploader) Save(prefix string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("%w: image larger than 10 MiB", domain.ErrInvalidInput)
	}
	ext, ok := allowedImageTypes[fh.Header.Get("Content-Type")]
	if !ok {
		return "", fmt.Errorf("%w: invalid file type, only JPEG, PNG, GIF, WebP allowed", domain.ErrInvalidInput)
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	sniffed := http.DetectContentType(head[:n])
	if _, ok := allowedImageTypes[sniffed]; !ok {
		return "", fmt.Errorf("%w: file content is not an image", domain.ErrInvalidInput)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	if err := os.MkdirAll(u.Dir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	filename := prefix + "_" + uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(u.Dir, filename))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}
	return "/uploads/" + filename, nil
}

// Remove deletes an image saved by Save. Used when the entity it was
// uploaded for could not be stored.
func (u Uploader) Remove(imageURL string) {
	name := filepath.Base(imageURL)
	if name == "." || name == "/" {
		return
	}
	_ = os.Remove(filepath.Join(u.Dir, name))
}
