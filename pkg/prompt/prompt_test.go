package prompt

import "testing"

func TestParseBool(t *testing.T) {
	for _, in := range []string{"y", "Yes", "true", "1"} {
		if v, err := ParseBool(in); err != nil || !v {
			t.Errorf("ParseBool(%q) = %v, %v", in, v, err)
		}
	}
	for _, in := range []string{"n", "No", "false", "0"} {
		if v, err := ParseBool(in); err != nil || v {
			t.Errorf("ParseBool(%q) = %v, %v", in, v, err)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Errorf("expected error")
	}
}

func TestValidateIntensity(t *testing.T) {
	for _, in := range []string{"1", " 5 ", "10"} {
		if err := ValidateIntensity(in); err != nil {
			t.Errorf("ValidateIntensity(%q) = %v", in, err)
		}
	}
	for _, in := range []string{"0", "11", "five", "7.5", ""} {
		if err := ValidateIntensity(in); err == nil {
			t.Errorf("ValidateIntensity(%q) should fail", in)
		}
	}
}
