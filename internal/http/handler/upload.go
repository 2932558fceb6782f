package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"claimdesk/internal/service"
)

// readUpload loads one multipart file into memory.
func readUpload(fh *multipart.FileHeader) (service.UploadFile, error) {
	f, err := fh.Open()
	if err != nil {
		return service.UploadFile{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return service.UploadFile{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return service.UploadFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
