package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	submitFlags.manager, submitFlags.name, submitFlags.phone = "", "", ""
	submitFlags.countryCode, submitFlags.date = "", ""
	submitFlags.districts = nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestManagersCommand(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	out, _, err := runCommand(t, "managers")
	require.NoError(t, err)
	assert.Contains(t, out, "Rohit Kumar: Nalanda, Banka, Bhagalpur, Jamui, Khagaria, Munger\n")
	assert.Contains(t, out, "Markandey Shahi: Lakhisarai, Madhepura, Saharsa, Sheikhpura, Supaul\n")
}

func TestSubmitCommand(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))

	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
	}))
	defer server.Close()

	t.Setenv("SUBMISSION_ENDPOINT_URL", server.URL)
	t.Setenv("LOG_LEVEL", "error")
	today := time.Now().UTC().Format("2006-01-02")

	out, _, err := runCommand(t, "submit",
		"--manager", "Vishwanath Singh",
		"--district", "East Champaran",
		"--district", "Madhubani",
		"--name", "A. Singh, Supervisor",
		"--phone", "(987) 654-3210",
		"--date", today,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Data submitted successfully!")
	assert.JSONEq(t,
		`{"manager":"Vishwanath Singh","district":"East Champaran, Madhubani","name":"A. Singh, Supervisor","phone":"+919876543210","schedule_date":"`+today+`"}`,
		received)
}

func TestSubmitCommandValidation(t *testing.T) {
	t.Setenv("SUBMISSION_ENDPOINT_URL", "http://127.0.0.1:1/unused")
	t.Setenv("LOG_LEVEL", "error")

	_, errOut, err := runCommand(t, "submit", "--manager", "Rohit Kumar", "--phone", "9876543210")
	assert.ErrorIs(t, err, errSubmitFailed)
	assert.Equal(t, "Please select at least one district. (--district)\n", errOut)
}

func TestFlagFor(t *testing.T) {
	assert.Equal(t, "district", flagFor("districtCheckboxes"))
	assert.Equal(t, "date", flagFor("schedule_date"))
	assert.Equal(t, "phone", flagFor("phone"))
}
