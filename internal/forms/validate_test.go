package forms

import (
	"reflect"
	"testing"
)

func TestValidateRequiredReportsEveryMissingField(t *testing.T) {
	required := []string{"a", "b", "c"}
	labels := map[string]string{"a": "Campo A", "b": "Campo B", "c": "Campo C"}
	values := map[string]interface{}{"a": "preenchido"}

	errs := ValidateRequired(required, labels, values)
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].FieldID != "b" || errs[1].FieldID != "c" {
		t.Errorf("Expected errors for b then c, got %s then %s", errs[0].FieldID, errs[1].FieldID)
	}
	if errs[0].Message != "Campo B é obrigatório" {
		t.Errorf("Unexpected message: %s", errs[0].Message)
	}
}

func TestValidateRequiredTreatsBlankStringsAsMissing(t *testing.T) {
	required := []string{"a"}
	values := map[string]interface{}{"a": "   "}

	errs := ValidateRequired(required, map[string]string{}, values)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error for blank string, got %d", len(errs))
	}
	// Unknown label falls back to the field id
	if errs[0].Label != "a" {
		t.Errorf("Expected label fallback to id, got %s", errs[0].Label)
	}
}

func TestValidateRequiredOrderFollowsDeclaration(t *testing.T) {
	required := []string{"z", "m", "a"}
	errs := ValidateRequired(required, map[string]string{}, map[string]interface{}{})

	got := []string{errs[0].FieldID, errs[1].FieldID, errs[2].FieldID}
	if !reflect.DeepEqual(got, required) {
		t.Errorf("Expected declaration order %v, got %v", required, got)
	}
}

func TestRunCustomValidatorTriState(t *testing.T) {
	values := map[string]interface{}{}

	if msgs := RunCustomValidator(nil, values); msgs != nil {
		t.Errorf("nil validator should pass, got %v", msgs)
	}

	pass := func(map[string]interface{}) CustomResult { return Pass() }
	if msgs := RunCustomValidator(pass, values); msgs != nil {
		t.Errorf("passing validator should yield no messages, got %v", msgs)
	}

	generic := func(map[string]interface{}) CustomResult { return Fail() }
	msgs := RunCustomValidator(generic, values)
	if len(msgs) != 1 || msgs[0] != "Falha na validação do formulário" {
		t.Errorf("generic failure should synthesize one message, got %v", msgs)
	}

	itemized := func(map[string]interface{}) CustomResult {
		return FailWith("Assinatura do Inspetor é obrigatória", "Data inválida")
	}
	msgs = RunCustomValidator(itemized, values)
	if len(msgs) != 2 || msgs[0] != "Assinatura do Inspetor é obrigatória" {
		t.Errorf("itemized failure should surface its own messages, got %v", msgs)
	}
}

func TestMergeErrorsFieldFirstNoDedup(t *testing.T) {
	fieldErrs := []FieldError{
		{FieldID: "a", Message: "Campo A é obrigatório"},
	}
	custom := []string{"Campo A é obrigatório", "Regra extra"}

	merged := MergeErrors(fieldErrs, custom)
	want := []string{"Campo A é obrigatório", "Campo A é obrigatório", "Regra extra"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("Expected %v, got %v", want, merged)
	}
}

func TestValidateResetsBetweenAttempts(t *testing.T) {
	required := []string{"a", "b"}
	labels := map[string]string{"a": "Campo A", "b": "Campo B"}

	first := Validate(required, labels, map[string]interface{}{}, nil)
	if len(first) != 2 {
		t.Fatalf("Expected 2 errors on first attempt, got %d", len(first))
	}

	// Fixing one field must drop its error; nothing stale survives.
	second := Validate(required, labels, map[string]interface{}{"a": "ok"}, nil)
	if len(second) != 1 || second[0] != "Campo B é obrigatório" {
		t.Errorf("Expected only Campo B error on second attempt, got %v", second)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	required := []string{"a", "b"}
	labels := map[string]string{"a": "Campo A", "b": "Campo B"}
	values := map[string]interface{}{"a": "ok"}

	first := Validate(required, labels, values, nil)
	second := Validate(required, labels, values, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Same input must yield same errors: %v vs %v", first, second)
	}
}
