package catalog

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxImageSize = 5 << 20

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// ImageStore keeps uploaded product images on local disk. Stored paths are
// server-relative ("/uploads/products/<name>") and get resolved against the
// public origin at render time.
type ImageStore struct {
	// Dir is the on-disk directory uploads land in.
	Dir string
	// Prefix is the URL path the directory is served under.
	Prefix string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{Dir: dir, Prefix: "/uploads/products"}
}

func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if extension == "" {
		return "", Invalid("image file extension is required")
	}
	if _, ok := allowedImageExtensions[extension]; !ok {
		return "", Invalid(fmt.Sprintf("unsupported image type: %s", extension))
	}
	if file.Size > maxImageSize {
		return "", Invalid("image file too large (max 5MB)")
	}

	filename := primitive.NewObjectID().Hex() + extension

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	out, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", err
	}
	defer out.Close()

	in, err := file.Open()
	if err != nil {
		return "", err
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", err
	}

	return path.Join(s.Prefix, filename), nil
}

// Remove deletes a previously stored image. References outside the upload
// prefix (absolute URLs, legacy values) are ignored rather than touched.
func (s *ImageStore) Remove(ref string) error {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" || strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return nil
	}

	cleanRel := path.Clean("/" + strings.TrimPrefix(trimmed, "/"))
	if !strings.HasPrefix(cleanRel, s.Prefix+"/") {
		return fmt.Errorf("refusing to delete non-upload path: %s", ref)
	}

	target := filepath.Join(s.Dir, filepath.Base(cleanRel))
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *ImageStore) removeQuietly(ref string) {
	if err := s.Remove(ref); err != nil {
		log.Printf("[catalog] image cleanup failed for %s: %v", ref, err)
	}
}
