package validators

import "testing"

func TestIsEmail(t *testing.T) {
	valid := []string{
		"joao@example.com",
		"maria.silva@barbearia.com.br",
		"a@b.co",
	}
	for _, e := range valid {
		if !IsEmail(e) {
			t.Errorf("IsEmail(%q) = false, want true", e)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"joao@",
		"João Silva <joao@example.com>",
		"joao@example.com ",
	}
	for _, e := range invalid {
		if IsEmail(e) {
			t.Errorf("IsEmail(%q) = true, want false", e)
		}
	}
}
