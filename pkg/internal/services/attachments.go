package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const postImageDir = "posts"

func GetMediaDir() string {
	if dir := viper.GetString("storage.media_dir"); len(dir) > 0 {
		return dir
	}
	return "media"
}

// SavePostImage stores an uploaded image under the media dir and returns its path relative to it.
func SavePostImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("unable to open upload: %v", err)
	}
	defer src.Close()

	mime, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("unable to detect upload type: %v", err)
	} else if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("upload must be an image, got %s", mime.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	dir := filepath.Join(GetMediaDir(), postImageDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("unable to create media dir: %v", err)
	}

	name := uuid.NewString() + mime.Extension()
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("unable to save upload: %v", err)
	}

	return postImageDir + "/" + name, nil
}
