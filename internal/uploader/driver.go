package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"tradeos/internal/domain"
	"tradeos/internal/fileparse"
)

// State is the driver's position in an upload.
type State string

const (
	StateIdle             State = "idle"
	StateValidating       State = "validating"
	StateParsing          State = "parsing"
	StateUploading        State = "uploading"
	StateProcessingResult State = "processing_result"
	StateDone             State = "done"
	StateError            State = "error"
)

// Progress is a discrete milestone paired with a status phrase.
type Progress struct {
	Percent int
	Status  string
}

// ProgressFunc receives progress milestones during an upload.
type ProgressFunc func(Progress)

// Driver coordinates validate → parse → HTTP post → result decode as one
// operation with user-visible progress. One upload is in flight at a time;
// any failure resets the driver so the next attempt starts clean.
type Driver struct {
	endpoint   string
	client     *http.Client
	onProgress ProgressFunc

	mu    sync.Mutex
	state State
	busy  bool
}

// New creates a Driver posting to the given extraction endpoint.
func New(endpoint string, onProgress ProgressFunc) *Driver {
	if onProgress == nil {
		onProgress = func(Progress) {}
	}
	return &Driver{
		endpoint:   endpoint,
		client:     &http.Client{Timeout: 5 * time.Minute},
		onProgress: onProgress,
		state:      StateIdle,
	}
}

// State returns the driver's current state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Driver) setState(s State) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()
}

// Upload runs the full pipeline for one file and returns the server's raw
// result body. The error message of a failed attempt is surfaced verbatim;
// the driver is always left retryable.
func (d *Driver) Upload(ctx context.Context, name string, data []byte, mimeType string, mode domain.ExtractMode) (json.RawMessage, error) {
	d.mu.Lock()
	if d.busy {
		d.mu.Unlock()
		return nil, fmt.Errorf("upload already in progress")
	}
	d.busy = true
	d.mu.Unlock()

	result, err := d.run(ctx, name, data, mimeType, mode)

	d.mu.Lock()
	d.busy = false
	if err != nil {
		d.state = StateIdle
	} else {
		d.state = StateDone
	}
	d.mu.Unlock()

	return result, err
}

func (d *Driver) run(ctx context.Context, name string, data []byte, mimeType string, mode domain.ExtractMode) (json.RawMessage, error) {
	d.setState(StateValidating)
	if err := fileparse.ValidateFile(name, int64(len(data)), mimeType); err != nil {
		return nil, err
	}

	d.setState(StateParsing)
	d.onProgress(Progress{Percent: 10, Status: "파일을 읽는 중..."})
	parsed, err := fileparse.ParseFile(name, data)
	if err != nil {
		return nil, err
	}

	d.setState(StateUploading)
	d.onProgress(Progress{Percent: 40, Status: "AI 분석을 요청하는 중..."})

	body, contentType, err := buildForm(name, data, parsed, mode)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling extraction endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	d.onProgress(Progress{Percent: 90, Status: "결과를 처리하는 중..."})

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", decodeErrorBody(resp.StatusCode, respBody))
	}

	d.setState(StateProcessingResult)
	if !json.Valid(respBody) {
		return nil, fmt.Errorf("invalid result body from server")
	}

	d.onProgress(Progress{Percent: 100, Status: "완료"})
	return json.RawMessage(respBody), nil
}

// buildForm packages the multipart request: the raw file always travels;
// text and images only when the file is not an image type.
func buildForm(name string, data []byte, parsed *domain.ParsedFile, mode domain.ExtractMode) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, "", fmt.Errorf("building form: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return nil, "", fmt.Errorf("building form: %w", err)
	}

	if err := w.WriteField("mode", string(mode)); err != nil {
		return nil, "", fmt.Errorf("building form: %w", err)
	}

	if parsed.Type != domain.FileTypeImage {
		if err := w.WriteField("text", parsed.Text); err != nil {
			return nil, "", fmt.Errorf("building form: %w", err)
		}
		if len(parsed.Images) > 0 {
			encoded, err := json.Marshal(parsed.Images)
			if err != nil {
				return nil, "", fmt.Errorf("building form: %w", err)
			}
			if err := w.WriteField("images", string(encoded)); err != nil {
				return nil, "", fmt.Errorf("building form: %w", err)
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("building form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// decodeErrorBody extracts a structured {"error"} message from a non-200
// response, falling back to a generic status-coded message.
func decodeErrorBody(status int, body []byte) string {
	var decoded struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error != "" {
		return decoded.Error
	}
	return fmt.Sprintf("server error (%d)", status)
}
