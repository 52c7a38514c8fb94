package errors

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRecoverWithPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "TestOperation")
		panic("test panic message")
	}

	err := testFunc()

	if err == nil {
		t.Fatal("Expected error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}

	if panicErr.Operation != "TestOperation" {
		t.Errorf("Expected operation 'TestOperation', got '%s'", panicErr.Operation)
	}
	if panicErr.PanicValue != "test panic message" {
		t.Errorf("Expected panic value 'test panic message', got '%v'", panicErr.PanicValue)
	}
	if panicErr.StackTrace == "" {
		t.Error("Expected non-empty stack trace")
	}

	expectedMsg := "panic in TestOperation: test panic message"
	if panicErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, panicErr.Error())
	}
}

func TestRecoverWithoutPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "TestOperation")
		return nil
	}

	if err := testFunc(); err != nil {
		t.Fatalf("Expected no error when no panic occurs, got: %v", err)
	}
}

func TestRecoverPreservesExistingError(t *testing.T) {
	original := New("original failure")
	testFunc := func() (err error) {
		defer Recover(&err, "TestOperation")
		err = original
		panic("late panic")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !Is(err, original) {
		t.Errorf("Expected wrapped original error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "late panic") {
		t.Errorf("Expected panic info in message, got: %v", err)
	}
}

func TestRecoverGonumPanic(t *testing.T) {
	// Shape mismatches make gonum panic; the recovery layer must turn
	// that into an error.
	testFunc := func() (err error) {
		defer Recover(&err, "MulVec")
		a := mat.NewDense(2, 3, nil)
		v := mat.NewVecDense(2, nil)
		out := mat.NewVecDense(2, nil)
		out.MulVec(a, v)
		return nil
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error from gonum shape panic, got nil")
	}
	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
}
