package domains

import "testing"

func TestSettingsConfigured(t *testing.T) {
	if (Settings{}).Configured() {
		t.Fatal("empty settings must not be configured")
	}
	if (Settings{UserID: "u", ServiceID: "s"}).Configured() {
		t.Fatal("partial settings must not be configured")
	}
	full := Settings{UserID: "user_1", ServiceID: "service_1", TemplateID: "template_1"}
	if !full.Configured() {
		t.Fatal("complete settings must be configured")
	}
}

func TestSettingsValidate(t *testing.T) {
	warnings := Settings{}.Validate()
	want := []string{"User ID is required", "Service ID is required", "Template ID is required"}
	if len(warnings) != len(want) {
		t.Fatalf("warnings = %v, want %v", warnings, want)
	}
	for i := range want {
		if warnings[i] != want[i] {
			t.Fatalf("warnings = %v, want %v", warnings, want)
		}
	}

	invalid := Settings{UserID: "user id!", ServiceID: "svc", TemplateID: "tmpl"}.Validate()
	if len(invalid) != 1 || invalid[0] != "User ID contains invalid characters" {
		t.Fatalf("warnings = %v", invalid)
	}

	valid := Settings{UserID: "user_ABC-123", ServiceID: "service_x", TemplateID: "template_y"}.Validate()
	if len(valid) != 0 {
		t.Fatalf("valid settings produced warnings: %v", valid)
	}
}
