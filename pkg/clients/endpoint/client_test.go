package endpoint

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"district-scheduler/pkg/models"
)

func testPayload() models.SubmissionPayload {
	return models.SubmissionPayload{
		Manager:      "Rohit Kumar",
		District:     "Nalanda",
		Name:         "A. Singh, Supervisor",
		Phone:        "+919876543210",
		ScheduleDate: "2026-10-17",
	}
}

func TestSubmitPostsJSON(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotBody        string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, zaptest.NewLogger(t))
	require.NoError(t, client.Submit(context.Background(), testPayload()))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t,
		`{"manager":"Rohit Kumar","district":"Nalanda","name":"A. Singh, Supervisor","phone":"+919876543210","schedule_date":"2026-10-17"}`,
		gotBody)
}

func TestSubmitIgnoresHTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)
	assert.NoError(t, client.Submit(context.Background(), testPayload()))
}

func TestSubmitTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, 0, nil)
	err := client.Submit(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error sending submission")
}

func TestSubmitInvalidURL(t *testing.T) {
	client := NewClient("://bad", 0, nil)
	err := client.Submit(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating request")
}
