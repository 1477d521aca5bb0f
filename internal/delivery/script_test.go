package delivery

import (
	"strings"
	"testing"

	"github.com/julisunkan/sbp-pwa/internal/domains"
)

func TestInitScript(t *testing.T) {
	if got := InitScript(domains.Settings{}); got != "" {
		t.Fatalf("init script without user id = %q, want empty", got)
	}
	got := InitScript(domains.Settings{UserID: "user_abc"})
	if !strings.Contains(got, "emailjs.init('user_abc')") {
		t.Fatalf("init script = %q", got)
	}
}

func TestSubmissionScriptUnconfigured(t *testing.T) {
	got := SubmissionScript(domains.Settings{UserID: "user_abc"})
	if !strings.Contains(got, "EmailJS settings not configured") {
		t.Fatalf("partial settings must yield the warning script, got %q", got)
	}
	if strings.Contains(got, "emailjs.send") {
		t.Fatal("unconfigured script must never dispatch")
	}
}

func TestSubmissionScriptConfigured(t *testing.T) {
	settings := domains.Settings{UserID: "u", ServiceID: "service_9", TemplateID: "template_9"}
	got := SubmissionScript(settings)
	if !strings.Contains(got, "emailjs.send('service_9', 'template_9', templateParams)") {
		t.Fatalf("submission script missing dispatch call:\n%s", got)
	}
	if !strings.Contains(got, "new FormData(this)") {
		t.Fatal("submission script must collect form data")
	}
	if strings.Contains(got, "%s") || strings.Contains(got, "%!") {
		t.Fatalf("formatting verbs leaked into script:\n%s", got)
	}
}

func TestEmbedJS(t *testing.T) {
	settings := domains.Settings{UserID: "u1", ServiceID: "s1", TemplateID: "t1"}
	got := EmbedJS(settings)
	if !strings.Contains(got, "emailjs.init('u1')") || !strings.Contains(got, "emailjs.send('s1', 't1', templateParams)") {
		t.Fatalf("embed script incomplete:\n%s", got)
	}
}
