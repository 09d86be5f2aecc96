package api

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"

	"github.com/praxis-dev/client/profile"
	"github.com/wailsapp/mimetype"
)

// UploadResumeFile uploads a resume document (PDF, DOCX, TXT, ...) for
// text extraction and analysis. The content type is taken from the
// file extension when known, otherwise sniffed from the bytes.
func (c *Client) UploadResumeFile(ctx context.Context, filename string, data []byte, title string) (profile.Resume, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filename)))
	header.Set("Content-Type", detectContentType(filename, data))
	part, err := mw.CreatePart(header)
	if err != nil {
		return profile.Resume{}, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return profile.Resume{}, fmt.Errorf("failed to write file part: %w", err)
	}
	if title != "" {
		if err := mw.WriteField("title", title); err != nil {
			return profile.Resume{}, fmt.Errorf("failed to write title field: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return profile.Resume{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/resumes/upload/file", &buf)
	if err != nil {
		return profile.Resume{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := c.authorize(ctx, req); err != nil {
		return profile.Resume{}, err
	}

	var out profile.Resume
	if err := c.send(ctx, req, &out); err != nil {
		return profile.Resume{}, err
	}
	return out, nil
}

// ListResumes lists the signed-in user's uploaded resumes.
func (c *Client) ListResumes(ctx context.Context) ([]profile.Resume, error) {
	var out []profile.Resume
	if err := c.do(ctx, http.MethodGet, "/resumes/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func detectContentType(filename string, data []byte) string {
	if mType := mime.TypeByExtension(filepath.Ext(filename)); mType != "" {
		return mType
	}
	if detected := mimetype.Detect(data); detected != nil {
		return detected.String()
	}
	return "application/octet-stream"
}
