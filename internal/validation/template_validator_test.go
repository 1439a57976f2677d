package validation

import (
	"strings"
	"testing"
)

func TestValidateTags(t *testing.T) {
	v := NewTemplateValidator("", "")
	template := "Dear {name},\n{#orders}{product} x {qty}\n{/orders}"

	res := v.ValidateTags(template, "letter.txt", []string{"{name}", "{#orders}", "{/orders}", "{product}", "{qty}", "{total}"})
	if !res.Valid {
		t.Fatalf("expected valid result, got errors %v", res.Errors)
	}
	if len(res.Matched) != 5 {
		t.Errorf("matched %d tags, want 5: %v", len(res.Matched), res.Matched)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "{total}") {
		t.Errorf("warnings = %v, want one about {total}", res.Warnings)
	}
}

func TestValidateTagsUnclosedLoop(t *testing.T) {
	v := NewTemplateValidator("", "")
	res := v.ValidateTags("{#orders}{product}", "t", []string{"{#orders}", "{/orders}", "{product}"})
	if res.Valid {
		t.Fatalf("expected invalid result for unclosed loop")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "{/orders}") {
		t.Errorf("errors = %v", res.Errors)
	}
}

func TestValidateTagsCustomDelimiters(t *testing.T) {
	v := NewTemplateValidator("{{", "}}")
	res := v.ValidateTags("Hello {{name}}", "t", []string{"{name}"})
	if len(res.Matched) != 1 || len(res.Warnings) != 0 {
		t.Errorf("custom delimiter match failed: %+v", res)
	}
}

func TestCheckBalance(t *testing.T) {
	v := NewTemplateValidator("", "")
	res := v.ValidateTags("{name", "t", nil)
	if len(res.Warnings) != 1 {
		t.Errorf("expected balance warning, got %v", res.Warnings)
	}
}
