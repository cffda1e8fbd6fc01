package utils

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsAllowedFileType(filename string, allowedTypes []string) bool {
	ext := strings.TrimPrefix(GetFileExtension(filename), ".")

	for _, allowedType := range allowedTypes {
		if ext == allowedType {
			return true
		}
	}

	return false
}

func IsImageFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedImageTypes)
}

func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

// SaveTempFile spools src to a new file in dir, or the OS temp dir when
// dir is empty.
func SaveTempFile(dir string, src io.Reader, originalFilename string) (string, int64, error) {
	file, err := os.CreateTemp(dir, "upload-*"+GetFileExtension(originalFilename))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, src)
	if err != nil {
		_ = os.Remove(file.Name())
		return "", 0, fmt.Errorf("failed to write temp file: %w", err)
	}

	return file.Name(), size, nil
}

// DeleteFile removes path. A file that is already gone is not an error.
func DeleteFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// SniffContentType reads the first 512 bytes and rewinds.
func SniffContentType(file io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

func GetContentType(filename string) string {
	contentTypes := map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
		".svg":  "image/svg+xml",
	}

	if contentType, exists := contentTypes[GetFileExtension(filename)]; exists {
		return contentType
	}

	return "application/octet-stream"
}
