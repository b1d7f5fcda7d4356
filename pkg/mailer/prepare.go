package mailer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	mailtpl "github.com/oksasatya/fitness-backend/pkg/mailer/templates"
)

var ErrNoRecipient = errors.New("email job has no recipient")

// Prepare resolves a queued job into the subject and bodies to send.
// Template jobs are rendered from the embedded templates; raw jobs pass through.
func Prepare(job *EmailJob) (subject, text, html string, err error) {
	if strings.TrimSpace(job.To) == "" {
		return "", "", "", ErrNoRecipient
	}
	if job.Template == "" {
		if job.Subject == "" || (job.Text == "" && job.HTML == "") {
			return "", "", "", fmt.Errorf("email job for %s has neither template nor body", job.To)
		}
		return job.Subject, job.Text, job.HTML, nil
	}

	ensureRecipient(job)
	formatTimes(job.Data)
	return mailtpl.Render(strings.ToLower(job.Template), job.Data)
}

func ensureRecipient(job *EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Email"] = job.To
	}
}

// formatTimes adds a human-readable <Key>Text for known timestamp fields.
func formatTimes(data map[string]any) {
	for _, key := range []string{"SignedUpAt"} {
		v, ok := data[key]
		if !ok {
			continue
		}
		t, ok := parseTimeAny(v)
		if !ok || t.IsZero() {
			continue
		}
		data[key+"Text"] = t.UTC().Format("02 January 2006")
	}
}

func parseTimeAny(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	s := fmt.Sprintf("%v", v)
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05 -0700 MST",
		"2006-01-02 15:04:05 -0700",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
